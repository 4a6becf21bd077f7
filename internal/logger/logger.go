package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var globalLogger zerolog.Logger

var once sync.Once

// InitLogging sets up console logging on stderr at the given level, plus an
// optional JSON log file. Stdout stays free for interactive prompts. Unknown
// level names fall back to info.
func InitLogging(level, logFilePath string) {
	once.Do(func() {
		var writers []io.Writer
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
			if err != nil {
				// Fallback to stderr only if file cannot be opened
				// We can't use the logger yet, so just print to stderr
				os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		lvl, parseErr := zerolog.ParseLevel(strings.ToLower(level))
		if parseErr != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}

		multi := zerolog.MultiLevelWriter(writers...)
		logger := zerolog.New(multi).With().Timestamp().Logger()
		logger = logger.Level(lvl)
		globalLogger = logger
		// Set the global logger used by the zerolog/log package for convenience.
		log.Logger = logger

		if parseErr != nil {
			logger.Warn().Str("level", level).Msg("unknown log level, using info")
		}
	})
}

// Base returns the global logger. Components receive it as an explicit
// zerolog.Logger value through their constructors.
func Base() zerolog.Logger {
	return globalLogger
}
