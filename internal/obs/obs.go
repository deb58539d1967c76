// Package obs wraps the logrus logger the rest of sidim uses for
// registry diagnostics. It exists so the library stays silent by
// default the way gurre/si does, while still giving operators of a
// long-lived process something to turn on when they need to see
// registry seeding or interning activity.
package obs

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logger = newSilentLogger()

func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// SetOutput redirects library diagnostics to w. Pass io.Discard (the
// default) to silence them again.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel controls which diagnostics are emitted. The zero value
// keeps the library silent.
func SetLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// Debugf logs a debug-level diagnostic, e.g. registry seeding or a
// freshly-synthesized unit being interned.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Infof logs an info-level diagnostic, e.g. shutdown teardown.
func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

// Warnf logs a warn-level diagnostic, e.g. a malformed units.csv row
// being skipped during seeding.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}
