package importer

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/torbjornhedqvist/xlsxcalendar/internal/calendar"
)

func init() {
	Register("template", func() calendar.Overlay { return &Template{} })
}

// Template is the minimal overlay, a starting point for new importers. Load
// reads one content entry per line; Plot succeeds without writing anything.
type Template struct{}

// Load returns the non-empty lines of filename as content entries.
func (Template) Load(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			entries = append(entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return entries, nil
}

// Plot is a no-op.
func (Template) Plot(calendar.PlotContext) error {
	return nil
}
