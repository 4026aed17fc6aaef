// Package logger wraps charm/log with helpers for the conversion
// pipeline. The converter core never logs; only the entry point does,
// and by default everything is discarded.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseCompleted logs a successful parse
func (l *Logger) ParseCompleted(tokens int) {
	l.Debug("markdown parsed",
		"tokens", tokens)
}

// ParseFailed logs a parse failure
func (l *Logger) ParseFailed(err error) {
	l.Error("markdown parse failed",
		"error", err)
}

// ConversionCompleted logs a successful conversion
func (l *Logger) ConversionCompleted(blocks int) {
	l.Debug("conversion completed",
		"blocks", blocks)
}

// ConversionFailed logs a conversion error
func (l *Logger) ConversionFailed(err error) {
	l.Error("conversion failed",
		"error", err)
}
