package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownImporters(t *testing.T) {
	ess, err := Lookup("ess")
	require.NoError(t, err)
	assert.IsType(t, &ESS{}, ess)

	tmpl, err := Lookup("template")
	require.NoError(t, err)
	assert.IsType(t, &Template{}, tmpl)
}

func TestLookupReturnsFreshInstances(t *testing.T) {
	first, err := Lookup("ess")
	require.NoError(t, err)
	second, err := Lookup("ess")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestLookupUnknownImporter(t *testing.T) {
	_, err := Lookup("sap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sap")
	assert.Contains(t, err.Error(), "ess")
	assert.Contains(t, err.Error(), "template")
}

func TestKnownIsSorted(t *testing.T) {
	known := Known()
	assert.Contains(t, known, "ess")
	assert.Contains(t, known, "template")
	for i := 1; i < len(known); i++ {
		assert.Less(t, known[i-1], known[i])
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("ess", nil)
	})
}
