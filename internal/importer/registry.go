// Package importer holds the import overlay implementations and the registry
// that resolves them from the configuration's importer_module identifier.
package importer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/torbjornhedqvist/xlsxcalendar/internal/calendar"
)

var registry = map[string]func() calendar.Overlay{}

// Register adds an overlay factory under a stable identifier. Importers
// register themselves at init time; registering an identifier twice is a
// programming error and panics.
func Register(id string, factory func() calendar.Overlay) {
	if _, dup := registry[id]; dup {
		panic("importer: duplicate registration of " + id)
	}
	registry[id] = factory
}

// Lookup returns a fresh overlay for id. Each call hands out a new instance
// since overlays carry state between Load and Plot.
func Lookup(id string) (calendar.Overlay, error) {
	factory, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown importer %q, available: %s", id, strings.Join(Known(), ", "))
	}
	return factory(), nil
}

// Known lists the registered importer identifiers, sorted.
func Known() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
