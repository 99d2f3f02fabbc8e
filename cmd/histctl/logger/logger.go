// Package logger holds the process-wide structured logger for histctl.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"
)

// L is the global logger instance. It discards all output until Init enables it.
var L *slog.Logger = slog.New(slog.DiscardHandler)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Path    string     // JSON log file; empty logs text to stderr
	Level   slog.Level // Minimum log level
}

// Init configures logging and returns a function that releases the log file.
func Init(opts Options) (func() error, error) {
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return func() error { return nil }, nil
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if opts.Path == "" {
		L = slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	L = slog.New(slog.NewJSONHandler(f, handlerOpts))
	return f.Close, nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
