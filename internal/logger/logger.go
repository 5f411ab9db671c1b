// Package logger wraps charm/log for structured batch logging.
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

// FileParsed logs a successfully parsed file
func (l *Logger) FileParsed(path string, elapsed time.Duration) {
	l.Info("file parsed",
		"file", path,
		"elapsed", elapsed.Round(time.Microsecond))
}

// FileFailed logs a failed file
func (l *Logger) FileFailed(path string, err error) {
	l.Error("file failed",
		"file", path,
		"error", err)
}

// CacheHit logs a disk-cache hit
func (l *Logger) CacheHit(path string) {
	l.Debug("cache hit",
		"file", path)
}

// BatchDone logs the completion of a directory batch
func (l *Logger) BatchDone(dir string, files, errors int, elapsed time.Duration) {
	l.Info("batch done",
		"dir", dir,
		"files", files,
		"errors", errors,
		"elapsed", elapsed.Round(time.Millisecond))
}
