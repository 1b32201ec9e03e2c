// Package logging provides structured logging for the shell and its CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Logger wraps zerolog with the shell's output conventions.
type Logger struct {
	zlog zerolog.Logger
}

// New creates a logger writing to w. Terminals get the console format,
// anything else gets JSON lines.
func New(w io.Writer) *Logger {
	var output io.Writer = w
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
		}
	}

	return &Logger{
		zlog: zerolog.New(output).With().Timestamp().Logger(),
	}
}

// NewPlain creates a logger with the console format and no colors,
// regardless of what w is.
func NewPlain(w io.Writer) *Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	return &Logger{
		zlog: zerolog.New(output).With().Timestamp().Logger(),
	}
}

// NewDefault creates a logger on stderr.
func NewDefault() *Logger {
	return New(os.Stderr)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// Component returns a child logger tagged with the component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{zlog: l.zlog.With().Str("component", name).Logger()}
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// Panic returns a panic level event. Msg panics after writing.
func (l *Logger) Panic() *zerolog.Event {
	return l.zlog.Panic()
}

// SetVerbose switches the global level between info and debug.
func SetVerbose(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// OrNop returns l, or a discarding logger when l is nil.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return l
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
