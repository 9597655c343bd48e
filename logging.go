package dropoff

import (
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

// NewLogger returns a console logger for the command line tools. verbose enables
// the V(1) messages of the generator.
func NewLogger(out io.Writer, verbose bool) logr.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}
	zlog := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return zerologr.New(&zlog)
}
