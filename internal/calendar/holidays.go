package calendar

import "time"

// Holiday key formats. Full dates match one day; month-day keys recur every
// year in range.
const (
	holidayKeyExact     = "2006-01-02"
	holidayKeyRecurring = "01-02"
)

// HolidayTable maps holiday date keys to note strings. Keys are either full
// ISO dates ("2022-12-25") or recurring month-day entries ("12-25"). Built
// once before layout and read-only afterwards.
type HolidayTable map[string]string

// NewHolidayTable merges holiday layers left to right, later layers winning
// on key collisions. Callers pass the imported files in configuration order
// followed by the inline holidays map, which therefore always wins.
func NewHolidayTable(layers ...map[string]string) HolidayTable {
	table := make(HolidayTable)
	for _, layer := range layers {
		for key, note := range layer {
			table[key] = note
		}
	}
	return table
}

// Lookup returns the holiday note for a date. An exact full-date entry takes
// precedence over a recurring month-day entry for the same day.
func (t HolidayTable) Lookup(date time.Time) (string, bool) {
	if note, ok := t[date.Format(holidayKeyExact)]; ok {
		return note, true
	}
	if note, ok := t[date.Format(holidayKeyRecurring)]; ok {
		return note, true
	}
	return "", false
}
