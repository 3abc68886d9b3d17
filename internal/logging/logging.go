// Package logging holds the process-wide structured logger. Commands log
// through the package helpers; the root command configures verbosity once.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Configure replaces the logger with a text handler writing to w. Verbose
// enables debug records such as the command lines being launched.
func Configure(w io.Writer, verbose bool) {
	SetLogger(newLogger(w, verbose))
}

// SetLogger overrides the logger (e.g. for tests).
func SetLogger(l *slog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(msg string, args ...any) { current().Debug(msg, args...) }
func Warn(msg string, args ...any)  { current().Warn(msg, args...) }
