// Package tmux drives a tmux pane: it captures its content, paints the
// label overlay on its tty, reads characters through command-prompt and
// performs the jump.
package tmux

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cli/safeexec"

	"github.com/Gaurav-Gosain/easyjump/internal/logging"
)

// Runner executes one tmux command and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs the tmux binary.
type ExecRunner struct {
	Path string
}

// NewExecRunner locates tmux on PATH.
func NewExecRunner() (*ExecRunner, error) {
	path, err := safeexec.LookPath("tmux")
	if err != nil {
		return nil, fmt.Errorf("tmux not found: %w", err)
	}
	return &ExecRunner{Path: path}, nil
}

// Run executes tmux with args. Failures carry tmux's stderr.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	logging.Logger("tmux").Debug("exec", "args", args)

	cmd := exec.CommandContext(ctx, r.Path, args...)
	out, err := cmd.Output()
	if err != nil {
		name := "tmux"
		if len(args) > 0 {
			name += " " + args[0]
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s: %s", name, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}

// trimNewline drops the single newline tmux terminates output with.
func trimNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}
