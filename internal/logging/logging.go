// Package logging sets up the application log file. The TUI owns the
// terminal, so nothing may ever be written to stdout or stderr while it
// runs.
package logging

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Open returns a leveled logger writing to the given file, plus a close
// func. An empty path yields a logger that discards everything.
func Open(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return newLogger(io.Discard), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f), f.Close, nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
}
