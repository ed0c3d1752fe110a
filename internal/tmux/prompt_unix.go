//go:build unix

package tmux

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"github.com/Gaurav-Gosain/easyjump/internal/input"
	"github.com/Gaurav-Gosain/easyjump/internal/logging"
)

// readChar shows prompt in the tmux status line and waits for the single
// key the user presses. command-prompt cannot return a value, so its
// template writes the key into a FIFO that is read here.
func readChar(ctx context.Context, r Runner, prompt string, timeout time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir, err := os.MkdirTemp("", "easyjump-")
	if err != nil {
		return "", fmt.Errorf("failed to create fifo directory: %w", err)
	}
	defer os.RemoveAll(dir)

	fifo := filepath.Join(dir, uuid.NewString())
	if err := unix.Mkfifo(fifo, 0o600); err != nil {
		return "", fmt.Errorf("failed to create fifo: %w", err)
	}

	// Opening read-write does not wait for a writer, and the write side
	// held here keeps reads blocking until tmux delivers a line.
	f, err := os.OpenFile(fifo, os.O_RDWR, 0)
	if err != nil {
		return "", fmt.Errorf("failed to open fifo: %w", err)
	}
	defer f.Close()

	if err := f.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return "", fmt.Errorf("failed to set fifo deadline: %w", err)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = f.SetReadDeadline(time.Now())
	})
	defer stop()

	// %%% is replaced by the key with tmux special characters escaped.
	template := `run-shell -b "tee >> ` + ShellQuote(fifo) + ` << EOF\n%%%\nEOF"`
	if _, err := r.Run(ctx, "command-prompt", "-1", "-p", prompt, template); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(f).ReadString('\n')
	switch {
	case errors.Is(err, os.ErrDeadlineExceeded):
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logging.Logger("tmux").Debug("prompt timed out", "prompt", prompt, "timeout", timeout)
		return "", input.ErrTimeout
	case err != nil:
		return "", fmt.Errorf("failed to read fifo: %w", err)
	}

	ch := strings.TrimSuffix(line, "\n")
	if ch == "" {
		return "", input.ErrCancelled
	}
	return ch, nil
}
