// ABOUTME: Leveled diagnostic logging on top of slog levels; writes to stderr by default
// ABOUTME: Switches to CRLF line endings while the terminal has output post-processing disabled

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64
	raw   atomic.Bool

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// SetRaw tells the logger whether the terminal is in raw mode. In raw mode
// a bare "\n" no longer returns the carriage, so lines end in "\r\n".
func SetRaw(on bool) {
	raw.Store(on)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if slog.Level(level.Load()) > LevelDebug {
		return
	}
	emit("[DEBUG] ", format, args)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if slog.Level(level.Load()) > LevelInfo {
		return
	}
	emit("[INFO] ", format, args)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if slog.Level(level.Load()) > LevelWarn {
		return
	}
	emit("[WARN] ", format, args)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit("[ERROR] ", format, args)
}

func emit(prefix, format string, args []any) {
	eol := "\n"
	if raw.Load() {
		eol = "\r\n"
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, prefix+format+eol, args...)
}
