package cmd

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// setupLogger creates a console logger at the given level writing to out
func setupLogger(out io.Writer, logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	case "disabled":
		level = zerolog.Disabled
	}

	// Colors only when writing to a terminal
	noColor := true
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		noColor = false
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: noColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// debugLogger adapts a zerolog.Logger to navidrome.Logger
type debugLogger struct {
	logger zerolog.Logger
}

func (l debugLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}
