// Package log provides leveled, structured logging with per-module
// enable masks, so that chatty frame-by-frame debug output can be
// switched on for one part of the pipeline only.
package log

import (
	"io"

	"gopkg.in/Sirupsen/logrus.v0"
)

type Level uint8

// Levels map one-to-one onto logrus levels.
const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

// SetOutput redirects all log output (stderr by default).
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// Disable turns off all log output, whatever the module masks say.
func Disable() {
	logrus.SetOutput(io.Discard)
}

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}
