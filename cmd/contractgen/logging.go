package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// newLogger builds the console logger on w.
// --verbose and --quiet win over --log-level; the default level is info.
func newLogger(w io.Writer, f *controlFlags) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if f.logLevel != "" {
		parsed, err := zerolog.ParseLevel(f.logLevel)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("%w: --log-level %q", ErrUsage, f.logLevel)
		}
		level = parsed
	}
	switch {
	case f.verbose:
		level = zerolog.DebugLevel
	case f.quiet:
		level = zerolog.ErrorLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}
