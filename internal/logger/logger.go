package logger

import (
	"io"
	"log"
)

// Logger is the diagnostics channel. Persistence and other optional tiers
// report failures here instead of surfacing them to the chat output.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type stdLogger struct {
	info *log.Logger
	warn *log.Logger
}

// New returns a Logger writing bracketed lines to w.
func New(w io.Writer) Logger {
	return &stdLogger{
		info: log.New(w, "[info] ", log.LstdFlags),
		warn: log.New(w, "[warn] ", log.LstdFlags),
	}
}

func (l *stdLogger) Infof(format string, args ...any) {
	l.info.Printf(format, args...)
}

func (l *stdLogger) Warnf(format string, args ...any) {
	l.warn.Printf(format, args...)
}

type discard struct{}

// Discard returns a Logger that drops everything. It is the default sink so
// that storage failures stay invisible to the user.
func Discard() Logger { return discard{} }

func (discard) Infof(string, ...any) {}
func (discard) Warnf(string, ...any) {}
