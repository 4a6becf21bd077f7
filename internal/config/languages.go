package config

import (
	"fmt"
	"sort"
	"strings"
)

// Two letter weekday labels per ISO 639-1 language code, Monday first.
var weekdayLabels = map[string][7]string{
	"en": {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	"sv": {"Må", "Ti", "On", "To", "Fr", "Lö", "Sö"},
	"es": {"Lu", "Ma", "Mi", "Ju", "Vi", "Sá", "Do"},
	"fi": {"Ma", "Ti", "Ke", "To", "Pe", "La", "Su"},
}

// WeekdayLabels returns the weekday headings for a language code, Monday
// first. Unsupported codes are a ConfigError.
func WeekdayLabels(language string) ([7]string, error) {
	labels, ok := weekdayLabels[language]
	if !ok {
		return [7]string{}, &ConfigError{
			Field: "worksheet_day_of_week_language",
			Reason: fmt.Sprintf("unsupported language %q, supported: %s",
				language, strings.Join(SupportedLanguages(), ", ")),
		}
	}
	return labels, nil
}

// SupportedLanguages lists the language codes WeekdayLabels accepts, sorted.
func SupportedLanguages() []string {
	codes := make([]string, 0, len(weekdayLabels))
	for code := range weekdayLabels {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
