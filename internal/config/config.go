// Package config resolves the run configuration of the calendar generator
// from three places: the environment (.env via godotenv), an optional YAML
// configuration file and the command line. Command line values override file
// values, file values override the built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/torbjornhedqvist/xlsxcalendar/pkg/xlsxgrid"
)

const dateFormat = "2006-01-02"

// Defaults applied when neither the configuration file nor the command line
// provides a value.
const (
	DefaultOutputFile     = "./output.xlsx"
	DefaultWorksheetName  = "- Calendar -"
	DefaultTabColor       = "#ff9966"
	DefaultContentHeading = "Title/Heading"
)

// Args carries the command line values. Empty strings mean not provided.
type Args struct {
	StartDate  string
	EndDate    string
	ConfigFile string
	ThemeFile  string
	ImportFile string
	OutputFile string
	LogLevel   string
}

// fileConfig is the YAML schema of the configuration file.
type fileConfig struct {
	StartDate         string                    `yaml:"start_date"`
	EndDate           string                    `yaml:"end_date"`
	OutputFile        string                    `yaml:"output_file"`
	WorksheetName     string                    `yaml:"worksheet_name"`
	WorksheetTabColor string                    `yaml:"worksheet_tab_color"`
	DayOfWeekLanguage string                    `yaml:"worksheet_day_of_week_language"`
	ContentHeading    string                    `yaml:"content_heading"`
	ContentEntries    []string                  `yaml:"content_entries"`
	ThemeImports      string                    `yaml:"theme_imports"`
	CellFormats       map[string]xlsxgrid.Attrs `yaml:"cell_formats"`
	HolidayImports    []string                  `yaml:"holiday_imports"`
	Holidays          map[string]string         `yaml:"holidays"`
	ImporterModule    string                    `yaml:"importer_module"`
	ImporterFile      string                    `yaml:"importer_file"`
}

// themeFile is the YAML schema of an importable theme.
type themeFile struct {
	CellFormats map[string]xlsxgrid.Attrs `yaml:"cell_formats"`
}

// holidayFile is the YAML schema of an importable holiday list.
type holidayFile struct {
	Holidays map[string]string `yaml:"holidays"`
}

// Config is the fully resolved run configuration. ThemeFormats and
// CellFormats are kept as separate layers for the format resolver; Holidays
// is already merged, inline entries winning over imported ones.
type Config struct {
	StartDate         time.Time
	EndDate           time.Time
	OutputFile        string
	WorksheetName     string
	WorksheetTabColor string
	WeekdayLabels     [7]string
	ContentHeading    string
	ContentEntries    []string
	ThemeFormats      map[string]xlsxgrid.Attrs
	CellFormats       map[string]xlsxgrid.Attrs
	Holidays          map[string]string
	ImporterModule    string
	ImporterFile      string
}

// ImporterConfigured reports whether both an importer module and its input
// file are set.
func (c *Config) ImporterConfigured() bool {
	return c.ImporterModule != "" && c.ImporterFile != ""
}

// Load resolves the run configuration. Start and end date must come from the
// configuration file or the command line; everything else has a default.
// Broken theme or holiday imports are abandoned with a warning, a broken
// configuration file itself is a ConfigError.
func Load(log zerolog.Logger, args Args) (*Config, error) {
	labels, err := WeekdayLabels("en")
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		OutputFile:        DefaultOutputFile,
		WorksheetName:     DefaultWorksheetName,
		WorksheetTabColor: DefaultTabColor,
		WeekdayLabels:     labels,
		ContentHeading:    DefaultContentHeading,
	}

	fc, err := readConfigFile(log, args)
	if err != nil {
		return nil, err
	}

	// Dates: the command line wins over the file, but only as a pair. One of
	// the two sources must supply both.
	startStr, endStr := fc.StartDate, fc.EndDate
	if args.StartDate != "" && args.EndDate != "" {
		startStr, endStr = args.StartDate, args.EndDate
	}
	if startStr == "" || endStr == "" {
		return nil, &ConfigError{
			Field:  "start_date, end_date",
			Reason: "must be provided in the configuration file or on the command line",
		}
	}
	if cfg.StartDate, err = parseDate("start_date", startStr); err != nil {
		return nil, err
	}
	if cfg.EndDate, err = parseDate("end_date", endStr); err != nil {
		return nil, err
	}

	if fc.OutputFile != "" {
		cfg.OutputFile = fc.OutputFile
	}
	if args.OutputFile != "" {
		cfg.OutputFile = args.OutputFile
	}
	if fc.WorksheetName != "" {
		cfg.WorksheetName = fc.WorksheetName
	}
	if fc.WorksheetTabColor != "" {
		cfg.WorksheetTabColor = fc.WorksheetTabColor
	}
	if fc.DayOfWeekLanguage != "" {
		if cfg.WeekdayLabels, err = WeekdayLabels(fc.DayOfWeekLanguage); err != nil {
			return nil, err
		}
	}
	if fc.ContentHeading != "" {
		cfg.ContentHeading = fc.ContentHeading
	}
	if len(fc.ContentEntries) > 0 {
		cfg.ContentEntries = fc.ContentEntries
	}

	themePath := fc.ThemeImports
	if args.ThemeFile != "" {
		themePath = args.ThemeFile
	}
	if themePath != "" {
		theme, err := loadTheme(themePath)
		if err != nil {
			log.Warn().Err(err).Str("file", themePath).Msg("abandoning theme imports")
		} else {
			cfg.ThemeFormats = theme
		}
	}
	cfg.CellFormats = fc.CellFormats

	cfg.Holidays = loadHolidays(log, fc.HolidayImports)
	for date, note := range fc.Holidays {
		cfg.Holidays[date] = note
	}

	cfg.ImporterModule = fc.ImporterModule
	cfg.ImporterFile = fc.ImporterFile
	if args.ImportFile != "" {
		cfg.ImporterFile = args.ImportFile
	}
	if (cfg.ImporterModule == "") != (cfg.ImporterFile == "") {
		log.Warn().
			Str("importer_module", cfg.ImporterModule).
			Str("importer_file", cfg.ImporterFile).
			Msg("importer_module and importer_file must both be set, skipping import")
		cfg.ImporterModule, cfg.ImporterFile = "", ""
	}

	return cfg, nil
}

// readConfigFile loads the YAML configuration file named on the command
// line. No file flag means a minimal run from command line values alone. An
// unreadable file degrades to the same minimal run when the command line
// carries both dates; a file that reads but does not parse is always fatal.
func readConfigFile(log zerolog.Logger, args Args) (fileConfig, error) {
	var fc fileConfig
	if args.ConfigFile == "" {
		return fc, nil
	}
	data, err := os.ReadFile(args.ConfigFile)
	if err != nil {
		if args.StartDate != "" && args.EndDate != "" {
			log.Warn().Err(err).Msg("configuration file unreadable, proceeding on command line values alone")
			return fileConfig{}, nil
		}
		return fc, &ConfigError{Field: "config_file", Reason: err.Error()}
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, &ConfigError{
			Field:  "config_file",
			Reason: fmt.Sprintf("parsing %s: %v", args.ConfigFile, err),
		}
	}
	return fc, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, &ConfigError{
			Field:  field,
			Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", value),
		}
	}
	return t, nil
}

func loadTheme(filename string) (map[string]xlsxgrid.Attrs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	return tf.CellFormats, nil
}

// loadHolidays merges the imported holiday files in order. One broken file
// drops every imported entry so a half merged table never reaches the
// calendar.
func loadHolidays(log zerolog.Logger, files []string) map[string]string {
	merged := map[string]string{}
	for _, filename := range files {
		var hf holidayFile
		data, err := os.ReadFile(filename)
		if err == nil {
			err = yaml.Unmarshal(data, &hf)
		}
		if err != nil {
			log.Warn().Err(err).Str("file", filename).Msg("abandoning all holiday imports")
			return map[string]string{}
		}
		for date, note := range hf.Holidays {
			merged[date] = note
		}
	}
	return merged
}
