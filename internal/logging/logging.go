// Package logging owns the process logger.
//
// easyjump runs under `tmux run-shell -b`, where anything written to
// stderr pops up over the pane, so logs go to a file in the XDG state
// directory instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

var (
	mu   sync.RWMutex
	root = log.NewWithOptions(io.Discard, log.Options{
		ReportTimestamp: true,
		Level:           log.WarnLevel,
	})
)

// Path returns the log file location.
func Path() (string, error) {
	return xdg.StateFile(filepath.Join("easyjump", "easyjump.log"))
}

// Setup opens the log file and points the root logger at it. Warnings
// are always recorded; debug enables everything. The returned closer
// must be closed on exit.
func Setup(debug bool) (io.Closer, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("could not determine log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	SetOutput(f, level)
	return f, nil
}

// SetOutput replaces the root logger.
func SetOutput(w io.Writer, level log.Level) {
	mu.Lock()
	defer mu.Unlock()
	root = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

// Logger returns a logger for one component. Call it at the point of use
// so the result follows SetOutput.
func Logger(prefix string) *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.WithPrefix(prefix)
}
