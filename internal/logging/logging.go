// Package logging builds the structured loggers used by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/storage"
)

// DefaultPath is where the interactive game writes its log.
const DefaultPath = "~/.arcade/starcatch.log"

// New returns a timestamped logger writing to w.
func New(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
}

// ParseLevel is log.ParseLevel that also accepts an empty string as info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(s)
}

// OpenFile opens (appending) the log file at path, creating its directory.
// "-" selects stderr. The returned close function is always non-nil.
func OpenFile(path string) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	if path == "-" {
		return os.Stderr, noop, nil
	}
	if path == "" {
		return io.Discard, noop, nil
	}

	expanded, err := storage.ExpandHome(path)
	if err != nil {
		return nil, noop, fmt.Errorf("logging: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return nil, noop, fmt.Errorf("logging: create log directory: %w", err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("logging: open %s: %w", expanded, err)
	}
	return f, f.Close, nil
}
