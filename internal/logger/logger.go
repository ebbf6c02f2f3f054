// Package logger wraps charmbracelet/log with helpers for the events this
// project reports.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w at Info level.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return NewWithLevel(io.Discard, log.FatalLevel)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *Logger) *Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// ParseLevel maps a level name to a log level. Unknown names yield Info.
func ParseLevel(name string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// MarkerDegraded logs an inline HTML pattern kept as literal text.
func (l *Logger) MarkerDegraded(fragment, reason string) {
	l.Debug("marker kept as text",
		"fragment", fragment,
		"reason", reason)
}

// ImageUnresolved logs an image whose source could not be resolved.
func (l *Logger) ImageUnresolved(src string, wiki bool) {
	l.Debug("image unresolved",
		"src", src,
		"wiki", wiki)
}

// ImageResolved logs a resolved image source.
func (l *Logger) ImageResolved(src, path string) {
	l.Debug("image resolved",
		"src", src,
		"path", path)
}

// FileFormatted logs a file rewritten in canonical form.
func (l *Logger) FileFormatted(file string, changed bool) {
	l.Info("file formatted",
		"file", file,
		"changed", changed)
}

// FileSkipped logs when a file is skipped.
func (l *Logger) FileSkipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}

// FileError logs an error for a specific file.
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// BatchCompleted logs the end of a multi-file run.
func (l *Logger) BatchCompleted(files, failed int, duration time.Duration) {
	l.Info("batch completed",
		"files", files,
		"failed", failed,
		"duration", duration.Round(time.Millisecond))
}

// ConfigLoaded logs successful config loading.
func (l *Logger) ConfigLoaded(path string) {
	l.Debug("config loaded", "path", path)
}

// WorkspaceIndexed logs the size of a workspace file index.
func (l *Logger) WorkspaceIndexed(root string, files int) {
	l.Debug("workspace indexed",
		"root", root,
		"files", files)
}
