// Package cli wires the calendar generator together: environment and
// logging setup, configuration loading, format resolution, the grid build
// and the save retry loop.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/torbjornhedqvist/xlsxcalendar/internal/calendar"
	"github.com/torbjornhedqvist/xlsxcalendar/internal/config"
	"github.com/torbjornhedqvist/xlsxcalendar/internal/format"
	"github.com/torbjornhedqvist/xlsxcalendar/internal/importer"
	"github.com/torbjornhedqvist/xlsxcalendar/internal/logger"
	"github.com/torbjornhedqvist/xlsxcalendar/pkg/xlsxgrid"
)

// NewRootCommand builds the calendar command. A fresh command is returned on
// every call so tests can run it repeatedly with their own flag values.
func NewRootCommand() *cobra.Command {
	var args config.Args

	cmd := &cobra.Command{
		Use:   "xlsxcalendar",
		Short: "Creates a calendar in Excel",
		Long: `Creates a calendar in Excel, laid out as year, month, week and day bands
with a content area on the left. Dates, holidays, formats and import
plugins are configured in a YAML file; the most common values can also be
given on the command line, which then override the file.

Examples:
  xlsxcalendar -s 2023-01-01 -e 2023-06-30
  xlsxcalendar -c calendar.yaml -o plan.xlsx
  xlsxcalendar -c calendar.yaml -i absence.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&args.StartDate, "start-date", "s", "", "start date of calendar, using format YYYY-MM-DD")
	flags.StringVarP(&args.EndDate, "end-date", "e", "", "end date of calendar, using format YYYY-MM-DD")
	flags.StringVarP(&args.ConfigFile, "config-file", "c", "", "configuration input file in yaml format")
	flags.StringVarP(&args.ImportFile, "import-file", "i", "", "data file to be imported into the calendar")
	flags.StringVarP(&args.ThemeFile, "theme-file", "t", "", "theme file, overrides the configured theme imports")
	flags.StringVarP(&args.OutputFile, "output-file", "o", "", "output xlsx file, overrides the configured path")
	flags.StringVarP(&args.LogLevel, "log-level", "l", "", "log level (trace, debug, info, warn, error), overrides LOG_LEVEL")

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args config.Args) error {
	env := config.LoadEnv()
	level := env.LogLevel
	if args.LogLevel != "" {
		level = args.LogLevel
	}
	logger.InitLogging(level, env.LogFilePath)
	log := logger.Base()

	cfg, err := config.Load(log, args)
	if err != nil {
		return err
	}

	rng, err := calendar.NewDateRange(cfg.StartDate, cfg.EndDate)
	if err != nil {
		return err
	}

	rules := format.Resolve(log, cfg.ThemeFormats, cfg.CellFormats)
	holidays := calendar.NewHolidayTable(cfg.Holidays)

	grid, err := xlsxgrid.New(cfg.WorksheetName, xlsxgrid.WithTabColor(cfg.WorksheetTabColor))
	if err != nil {
		return fmt.Errorf("creating workbook: %w", err)
	}
	defer grid.Close()

	builder := calendar.NewGridBuilder(log, grid, rng, rules).
		WithHolidays(holidays).
		WithContentHeading(cfg.ContentHeading).
		WithContentEntries(cfg.ContentEntries).
		WithWeekdayLabels(cfg.WeekdayLabels)

	if cfg.ImporterConfigured() {
		overlay, err := importer.Lookup(cfg.ImporterModule)
		if err != nil {
			return err
		}
		builder = builder.WithOverlay(cfg.ImporterModule, overlay, cfg.ImporterFile)
	}

	if err := builder.Build(); err != nil {
		// A failed overlay plot leaves the base calendar intact and worth
		// saving. Everything else aborts with no output file.
		var overlayErr *calendar.OverlayError
		if !errors.As(err, &overlayErr) || overlayErr.Op != "plot" {
			return err
		}
		log.Warn().Err(err).Msg("parts of the import failed, saving the base calendar")
	}

	return saveWithRetry(log, cmd, grid, cfg.OutputFile)
}

// saveWithRetry persists the workbook, prompting to retry while the sink
// reports an OutputError. The usual cause is the target file being open in
// Excel; a retry re-attempts persistence only, the grid is not rebuilt.
func saveWithRetry(log zerolog.Logger, cmd *cobra.Command, grid *xlsxgrid.Grid, path string) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	for {
		err := grid.Save(path)
		if err == nil {
			log.Info().Str("file", path).Msg("calendar written")
			fmt.Fprintf(out, "Calendar stored in %s\n", path)
			return nil
		}
		var outErr *xlsxgrid.OutputError
		if !errors.As(err, &outErr) {
			return err
		}

		fmt.Fprintf(out, "Could not write %s: %v\n", path, outErr.Err)
		fmt.Fprintln(out, "Please close the file if it is open in Excel.")
		fmt.Fprint(out, "Try to write file again? [Y/n]: ")
		line, readErr := in.ReadString('\n')
		if readErr != nil && line == "" {
			// Non-interactive run, nothing to wait for.
			return err
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "n", "no":
			return err
		default:
			continue
		}
	}
}
