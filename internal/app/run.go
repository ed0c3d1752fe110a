// Package app runs one search-and-jump cycle against a Controller.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/Gaurav-Gosain/easyjump/internal/config"
	"github.com/Gaurav-Gosain/easyjump/internal/input"
	"github.com/Gaurav-Gosain/easyjump/internal/jump"
	"github.com/Gaurav-Gosain/easyjump/internal/logging"
	"github.com/Gaurav-Gosain/easyjump/internal/screen"
)

// Controller is the boundary to the terminal multiplexer.
type Controller interface {
	// CaptureScreen returns the visible pane text and the cursor.
	CaptureScreen(ctx context.Context) (screen.Lines, jump.Cursor, error)
	// RenderOverlay paints matches over the captured text.
	RenderOverlay(ctx context.Context, matches []jump.Match) error
	// RestoreScreen removes the overlay. Safe to call when nothing was drawn.
	RestoreScreen(ctx context.Context) error
	// ReadChar reads one character, returning input.ErrCancelled on an
	// empty read and input.ErrTimeout when timeout passes.
	ReadChar(ctx context.Context, prompt string, timeout time.Duration) (string, error)
	// ExecuteJump acts on the chosen position.
	ExecuteJump(ctx context.Context, pos jump.Position) error
}

// Run captures the pane, asks for a key, labels the matches, reads a label
// and jumps. Cancellation at any prompt ends the run without error and
// without jumping.
func Run(ctx context.Context, ctrl Controller, cfg config.Config) error {
	log := logging.Logger("app")

	lines, cursor, err := ctrl.CaptureScreen(ctx)
	if err != nil {
		return err
	}
	if cfg.Cursor != nil {
		cursor = *cfg.Cursor
	}

	prompt := input.NewPrompt(ctrl, cfg.PromptTimeout)

	key := cfg.Key
	if key == "" {
		key, err = prompt.ReadKey(ctx, cfg.KeyLength)
		if err != nil {
			return quiet(err)
		}
	}

	plan := jump.NewPlan(lines, key, cursor, cfg.JumpOptions())
	log.Debug("searched", "key", key, "matches", len(plan.Positions), "label_length", plan.LabelLength)

	if plan.Empty() {
		return nil
	}
	if pos, ok := plan.Direct(); ok {
		return ctrl.ExecuteJump(ctx, pos)
	}
	if n := plan.Unreachable(); n > 0 {
		log.Warn("some matches cannot be labeled",
			"key", key,
			"matches", len(plan.Positions),
			"unreachable", n,
			"label_length", plan.LabelLength,
		)
	}

	label, err := chooseLabel(ctx, ctrl, prompt, plan)
	if err != nil {
		return quiet(err)
	}

	pos, ok := plan.Resolve(label)
	if !ok {
		log.Debug("label not found", "label", label)
		return nil
	}
	log.Debug("jumping", "label", label, "position", pos)
	return ctrl.ExecuteJump(ctx, pos)
}

// chooseLabel shows the overlay for as long as the label is being typed.
func chooseLabel(ctx context.Context, ctrl Controller, prompt *input.Prompt, plan jump.Plan) (label string, err error) {
	defer func() {
		// Restore even when ctx was cancelled mid-prompt.
		if rerr := ctrl.RestoreScreen(context.WithoutCancel(ctx)); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if err := ctrl.RenderOverlay(ctx, plan.Matches); err != nil {
		return "", err
	}
	return prompt.ReadLabel(ctx, plan.LabelLength, plan.Matches)
}

// quiet turns the ways a user can back out of a run into a clean exit.
func quiet(err error) error {
	switch {
	case errors.Is(err, input.ErrCancelled),
		errors.Is(err, input.ErrTimeout),
		errors.Is(err, context.Canceled):
		logging.Logger("app").Debug("aborted", "reason", err)
		return nil
	default:
		return err
	}
}
