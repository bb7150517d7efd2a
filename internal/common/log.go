package common

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/decred/slog"
)

// LoggingEnabled controls whether Logf produces output.
var LoggingEnabled = true

var (
	backendMu sync.Mutex
	backend   = slog.NewBackend(os.Stderr)
	loggers   = map[string]slog.Logger{}
	logLevel  = slog.LevelInfo
)

// Logf prints a formatted message if logging is enabled.
func Logf(format string, args ...interface{}) {
	if LoggingEnabled {
		fmt.Printf(format, args...)
	}
}

// formatDuration formats a duration with 2 decimal places.
// Returns a string like "1.23 ms" (no padding).
func formatDuration(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)

	// Handle durations >= 1 second
	if ms >= 1000 {
		sec := ms / 1000
		return fmt.Sprintf("%.2f s", sec)
	} else if ms < 0.01 {
		// Sub-0.01 ms: show in microseconds
		us := ms * 1000
		return fmt.Sprintf("%.2f us", us)
	}
	// Everything else in milliseconds with 2 decimal places
	return fmt.Sprintf("%.2f ms", ms)
}

// LogDuration prints a message with the elapsed time since start.
// The duration is formatted with tight parens and right-padded to align messages.
func LogDuration(start time.Time, format string, args ...interface{}) {
	elapsed := time.Since(start)
	msg := fmt.Sprintf(format, args...)
	durStr := fmt.Sprintf("(%s)", formatDuration(elapsed))
	Logf("%-10s%s\n", durStr, msg)
}

// SetLogOutput replaces the writer subsystem loggers write to. Loggers
// created before the call keep their old writer.
func SetLogOutput(w io.Writer) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backend = slog.NewBackend(w)
	loggers = map[string]slog.Logger{}
}

// NewLogger returns the leveled logger for a subsystem tag such as "FLTR".
// Repeated calls with the same tag return the same logger.
func NewLogger(subsystem string) slog.Logger {
	backendMu.Lock()
	defer backendMu.Unlock()
	if l, ok := loggers[subsystem]; ok {
		return l
	}
	l := backend.Logger(subsystem)
	l.SetLevel(logLevel)
	loggers[subsystem] = l
	return l
}

// SetLogLevel sets the level of every subsystem logger, current and future.
// Valid levels are trace, debug, info, warn, error, critical and off.
func SetLogLevel(level string) error {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("invalid log level %q", level)
	}
	backendMu.Lock()
	defer backendMu.Unlock()
	logLevel = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
	return nil
}
