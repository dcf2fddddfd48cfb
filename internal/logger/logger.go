// Package logger holds the process-wide structured logger. It discards
// everything until Init enables it.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// L is the process-wide logger. It discards everything until Init enables
// file output.
var L = slog.New(slog.DiscardHandler)

const (
	logPrefix     = "readercache-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 30
)

var (
	mu   sync.Mutex
	file *os.File // file behind L, nil while discarding
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for log files. Default: ~/.readercache/logs
	Level   slog.Level // Minimum log level
}

// Init replaces L. With logging disabled L discards; otherwise it writes
// JSON lines to a dated file in opts.LogDir. The file of a previous Init is
// closed.
func Init(opts Options) error {
	if !opts.Enabled {
		return swap(slog.New(slog.DiscardHandler), nil)
	}

	dir, err := logDir(opts.LogDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	now := time.Now()
	cleanOldLogs(dir, now)

	f, err := os.OpenFile(fileName(dir, now), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return swap(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level})), f)
}

// Close closes the current log file, if any, and switches L back to
// discarding.
func Close() error {
	return swap(slog.New(slog.DiscardHandler), nil)
}

// For returns a child of L tagged with the component name and any extra
// key-value pairs. The child keeps the handler L had when For was called.
func For(component string, args ...any) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return L.With(append([]any{"component", component}, args...)...)
}

func swap(l *slog.Logger, f *os.File) error {
	mu.Lock()
	defer mu.Unlock()
	prev := file
	L, file = l, f
	if prev == nil {
		return nil
	}
	return prev.Close()
}

func logDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".readercache", "logs"), nil
}

func fileName(dir string, day time.Time) string {
	return filepath.Join(dir, logPrefix+day.Format(dateLayout)+logSuffix)
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
	return lvl, nil
}

// cleanOldLogs removes our log files dated more than retentionDays before now.
func cleanOldLogs(dir string, now time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := now.AddDate(0, 0, -retentionDays)
	for _, e := range entries {
		day, ok := strings.CutPrefix(e.Name(), logPrefix)
		if !ok {
			continue
		}
		day, ok = strings.CutSuffix(day, logSuffix)
		if !ok {
			continue
		}
		t, err := time.Parse(dateLayout, day)
		if err == nil && t.Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}
