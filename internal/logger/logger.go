package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	out     io.Writer = os.Stdout
	verbose bool
	history = slog.New(slog.DiscardHandler)
)

// Setup configures verbosity and routes Debug output through a tint handler
// on stderr.
func Setup(v bool) {
	verbose = v

	level := slog.LevelInfo
	if v {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}

// SetOutput redirects console output. Used by tests.
func SetOutput(w io.Writer) {
	out = w
}

// IsVerbose reports whether verbose output is enabled.
func IsVerbose() bool {
	return verbose
}

// OpenHistory starts appending deploy records as JSON lines to path, rotating
// the file once it reaches 1 MB.
func OpenHistory(path string) io.Closer {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1,
		MaxBackups: 3,
	}
	history = slog.New(slog.NewJSONHandler(w, nil))
	return w
}

// Record appends one entry to the deploy history.
func Record(msg string, args ...any) {
	history.Info(msg, args...)
}

// Debug logs debug messages only when verbose output is enabled
func Debug(format string, args ...interface{}) {
	if verbose {
		slog.Debug(fmt.Sprintf(format, args...))
	}
}

// Info logs informational messages (always shown)
func Info(format string, args ...interface{}) {
	fmt.Fprintf(out, "• %s\n", fmt.Sprintf(format, args...))
}

// Warning logs warning messages (always shown)
func Warning(format string, args ...interface{}) {
	fmt.Fprintf(out, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// Error logs error messages (always shown)
func Error(format string, args ...interface{}) {
	fmt.Fprintf(out, "✗ %s\n", fmt.Sprintf(format, args...))
}

// Success logs success messages (always shown)
func Success(format string, args ...interface{}) {
	fmt.Fprintf(out, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Plain prints a plain message without any prefix (always shown)
func Plain(format string, args ...interface{}) {
	fmt.Fprintf(out, format+"\n", args...)
}

// Progress prints a message without a trailing newline, to be completed by a
// later Plain call on the same line.
func Progress(format string, args ...interface{}) {
	fmt.Fprintf(out, format, args...)
}

// ErrorWithDetails logs an error with detailed information in verbose mode
func ErrorWithDetails(msg string, err error) {
	Error("%s", msg)
	if err != nil {
		Debug("Error details: %v", err)
	}
}
