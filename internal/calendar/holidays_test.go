package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHolidayTableInlineWinsOverImports(t *testing.T) {
	imported := map[string]string{"2022-12-25": "Imported Christmas"}
	inline := map[string]string{"2022-12-25": "Christmas"}

	table := NewHolidayTable(imported, inline)
	note, ok := table.Lookup(d("2022-12-25"))
	assert.True(t, ok)
	assert.Equal(t, "Christmas", note)
}

func TestHolidayTableDisjointImportsUnion(t *testing.T) {
	first := map[string]string{"2022-12-24": "Christmas Eve"}
	second := map[string]string{"2022-12-26": "Boxing Day"}

	table := NewHolidayTable(first, second)
	assert.Len(t, table, 2)

	note, ok := table.Lookup(d("2022-12-24"))
	assert.True(t, ok)
	assert.Equal(t, "Christmas Eve", note)

	note, ok = table.Lookup(d("2022-12-26"))
	assert.True(t, ok)
	assert.Equal(t, "Boxing Day", note)
}

func TestHolidayTableRecurringKey(t *testing.T) {
	table := NewHolidayTable(map[string]string{"01-01": "New Year's Day"})

	for _, day := range []string{"2022-01-01", "2023-01-01", "2030-01-01"} {
		note, ok := table.Lookup(d(day))
		assert.True(t, ok, day)
		assert.Equal(t, "New Year's Day", note)
	}

	_, ok := table.Lookup(d("2022-01-02"))
	assert.False(t, ok)
}

func TestHolidayTableExactBeatsRecurring(t *testing.T) {
	table := NewHolidayTable(map[string]string{
		"06-06":      "National Day",
		"2022-06-06": "National Day (observed)",
	})

	note, _ := table.Lookup(d("2022-06-06"))
	assert.Equal(t, "National Day (observed)", note)

	note, _ = table.Lookup(d("2023-06-06"))
	assert.Equal(t, "National Day", note)
}

func TestHolidayTableMiss(t *testing.T) {
	table := NewHolidayTable()
	note, ok := table.Lookup(d("2022-07-15"))
	assert.False(t, ok)
	assert.Empty(t, note)
}
