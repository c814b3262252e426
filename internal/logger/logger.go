// Package logger configures the global zerolog logger from command line options.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a go-flags option group.
type Logger struct {
	Level   string `long:"log-level"    env:"LOG_LEVEL"    description:"Log level (default info)" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal" choice:"panic" choice:"disabled"`
	Format  string `long:"log-format"   env:"LOG_FORMAT"   description:"Log format" choice:"console" choice:"json" default:"console"`
	NoColor bool   `long:"log-no-color" env:"LOG_NO_COLOR" description:"Disable colored console output"`
}

// Fallback sets the level when none was given on the command line, e.g. from
// a configuration file.
func (l *Logger) Fallback(level string) {
	if l.Level == "" {
		l.Level = level
	}
}

// New builds a logger writing to w.
func (l *Logger) New(w io.Writer) zerolog.Logger {
	if l.Format != "json" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    l.NoColor,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).Level(l.level()).With().Timestamp().Logger()
}

// Setup replaces the global logger with one writing to stderr.
func (l *Logger) Setup() {
	zerolog.SetGlobalLevel(l.level())
	log.Logger = l.New(os.Stderr)

	log.Debug().
		Str("level", l.level().String()).
		Str("format", l.Format).
		Msg("Logger initialized")
}

func (l *Logger) level() zerolog.Level {
	if l.Level == "" {
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}
