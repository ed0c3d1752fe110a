package tmux

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/colorprofile"

	"github.com/Gaurav-Gosain/easyjump/internal/jump"
	"github.com/Gaurav-Gosain/easyjump/internal/logging"
	"github.com/Gaurav-Gosain/easyjump/internal/overlay"
	"github.com/Gaurav-Gosain/easyjump/internal/screen"
)

// Options configures a Controller.
type Options struct {
	// XCopy jumps by moving the copy-mode cursor instead of clicking.
	XCopy bool
	// PrintCommandOnly prints the mouse send-keys command to Stdout
	// instead of running it.
	PrintCommandOnly bool
	CopyLine         bool
	CopyWord         bool
	PasteAfter       bool

	LabelAttrs   string
	TextAttrs    string
	ColorProfile colorprofile.Profile // Unknown means detect

	Stdout io.Writer
}

// Controller implements the capture, overlay, prompt and jump steps
// against the current tmux pane. A Controller serves a single run.
type Controller struct {
	run  Runner
	opts Options

	pane       PaneInfo
	copyMode   bool // current state; pane.InCopyMode is the state at capture
	altAllowed bool
	altOn      bool
	lines      screen.Lines
	snapshot   string

	tty      io.WriteCloser
	renderer *overlay.Renderer
	openTTY  func(path string) (io.WriteCloser, error)
}

// NewController creates a controller. Nothing is sent to tmux until
// CaptureScreen.
func NewController(r Runner, opts Options) *Controller {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	return &Controller{
		run:     r,
		opts:    opts,
		openTTY: openTTY,
	}
}

func openTTY(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
}

// CaptureScreen reads the pane text and cursor. In mouse mode copy mode is
// left first so the capture matches what a click will land on.
func (c *Controller) CaptureScreen(ctx context.Context) (screen.Lines, jump.Cursor, error) {
	pane, err := QueryPane(ctx, c.run)
	if err != nil {
		return nil, jump.Cursor{}, err
	}
	c.pane = pane
	c.copyMode = pane.InCopyMode

	c.altAllowed, err = AlternateScreenAllowed(ctx, c.run, pane)
	if err != nil {
		return nil, jump.Cursor{}, err
	}

	if !c.opts.XCopy {
		if err := c.exitCopyMode(ctx); err != nil {
			return nil, jump.Cursor{}, err
		}
	}

	args := []string{"capture-pane", "-t", pane.ID}
	if c.copyMode {
		start := -c.pane.ScrollPosition
		args = append(args, "-S", strconv.Itoa(start), "-E", strconv.Itoa(start+pane.Height-1))
	}
	args = append(args, "-p")
	out, err := c.run.Run(ctx, args...)
	if err != nil {
		return nil, jump.Cursor{}, err
	}
	c.lines = screen.NewLines(trimNewline(out), pane.Width)

	if !c.altAllowed {
		out, err := c.run.Run(ctx, "capture-pane", "-t", pane.ID, "-e", "-p")
		if err != nil {
			return nil, jump.Cursor{}, err
		}
		c.snapshot = strings.ReplaceAll(trimNewline(out), "\n", "\r\n")
	}

	logging.Logger("tmux").Debug("captured pane",
		"pane", pane.ID,
		"size", fmt.Sprintf("%dx%d", pane.Width, pane.Height),
		"copy_mode", c.copyMode,
		"alternate", c.altAllowed,
	)
	return c.lines, c.cursor(), nil
}

func (c *Controller) cursor() jump.Cursor {
	return jump.Cursor{Column: c.pane.CursorX + 1, Line: c.pane.CursorY + 1}
}

// RenderOverlay paints the captured text with labels on the pane tty.
func (c *Controller) RenderOverlay(ctx context.Context, matches []jump.Match) error {
	body := overlay.Compose(c.lines, matches, c.opts.LabelAttrs, c.opts.TextAttrs)

	if c.opts.XCopy {
		if err := c.exitCopyMode(ctx); err != nil {
			return err
		}
	}

	tty, err := c.openTTY(c.pane.TTY)
	if err != nil {
		return fmt.Errorf("failed to open pane tty: %w", err)
	}
	c.tty = tty
	c.renderer = overlay.NewRenderer(tty, overlay.ResolveProfile(tty, c.opts.ColorProfile, os.Environ()))

	if c.altAllowed {
		if err := c.renderer.EnterAltScreen(); err != nil {
			return err
		}
		c.altOn = true
	}
	return c.draw(body)
}

// RestoreScreen undoes RenderOverlay. It is a no-op when nothing was drawn.
func (c *Controller) RestoreScreen(context.Context) error {
	if c.tty == nil {
		return nil
	}
	defer func() {
		c.tty.Close()
		c.tty = nil
	}()

	if c.altOn {
		c.altOn = false
		return c.renderer.LeaveAltScreen()
	}
	return c.draw(c.snapshot)
}

func (c *Controller) draw(body string) error {
	if err := c.renderer.Draw(body, c.cursor()); err != nil {
		return fmt.Errorf("failed to write to pane tty: %w", err)
	}
	// Repainting the main screen pushes the copy-mode view down by a page.
	if c.pane.InCopyMode && !c.altOn {
		c.pane.ScrollPosition += c.pane.Height
	}
	return nil
}

// ReadChar prompts in the tmux status line and returns one key.
func (c *Controller) ReadChar(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	return readChar(ctx, c.run, prompt, timeout)
}

// ExecuteJump moves to pos with the configured method.
func (c *Controller) ExecuteJump(ctx context.Context, pos jump.Position) error {
	if c.opts.XCopy {
		return c.xcopyJump(ctx, pos)
	}
	return c.mouseJump(ctx, pos)
}

func (c *Controller) mouseJump(ctx context.Context, pos jump.Position) error {
	keys, err := MouseClick(pos.Column, pos.Line)
	if err != nil {
		return err
	}
	args := append([]string{"send-keys", "-t", c.pane.ID, "-H"}, HexArgs(keys)...)

	if c.opts.PrintCommandOnly {
		_, err := io.WriteString(c.opts.Stdout, ShellJoin(append([]string{"tmux"}, args...)))
		return err
	}
	_, err = c.run.Run(ctx, args...)
	return err
}

// errBeyondHistory means the saved scroll position no longer exists.
var errBeyondHistory = errors.New("scroll position is beyond the pane history")

func (c *Controller) xcopyJump(ctx context.Context, pos jump.Position) error {
	if err := c.enterCopyMode(ctx); err != nil {
		if errors.Is(err, errBeyondHistory) {
			logging.Logger("tmux").Warn("not jumping", "reason", err)
			return nil
		}
		return err
	}

	if err := c.sendX(ctx, "top-line", 0); err != nil {
		return err
	}
	if pos.Line >= 2 {
		if err := c.sendX(ctx, "cursor-down", pos.Line-1); err != nil {
			return err
		}
	}

	first, _ := c.lines.Line(1)
	if first.Chars == "" {
		// tmux leaves the cursor at the end of the line here, so count
		// back from it.
		line, _ := c.lines.Line(pos.Line)
		if err := c.sendX(ctx, "cursor-left", utf8.RuneCountInString(line.Chars)-pos.Char+1); err != nil {
			return err
		}
	} else if pos.Char >= 2 {
		if err := c.sendX(ctx, "cursor-right", pos.Char-1); err != nil {
			return err
		}
	}

	var follow []string
	switch {
	case c.opts.CopyLine:
		follow = []string{"begin-selection", "end-of-line", "cursor-left", "copy-selection-and-cancel"}
	case c.opts.CopyWord:
		follow = []string{"begin-selection", "next-word-end", "copy-selection-and-cancel"}
	}
	if c.opts.PasteAfter {
		follow = append(follow, "show-buffer")
	}
	for _, cmd := range follow {
		if err := c.sendX(ctx, cmd, 0); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) enterCopyMode(ctx context.Context) error {
	if c.copyMode {
		return nil
	}
	if _, err := c.run.Run(ctx, "copy-mode", "-t", c.pane.ID); err != nil {
		return err
	}

	if c.pane.InCopyMode {
		history, err := historySize(ctx, c.run, c.pane.ID)
		if err != nil {
			return err
		}
		// tmux reports scroll positions off by one when the history
		// size changed parity in between.
		if history%2 != c.pane.HistorySize%2 {
			c.pane.ScrollPosition--
		}
		c.pane.HistorySize = history
		if c.pane.ScrollPosition > history {
			return fmt.Errorf("%w: %d > %d", errBeyondHistory, c.pane.ScrollPosition, history)
		}
		if err := c.sendX(ctx, "goto-line", 0, strconv.Itoa(c.pane.ScrollPosition)); err != nil {
			return err
		}
	}
	c.copyMode = true
	return nil
}

func (c *Controller) exitCopyMode(ctx context.Context) error {
	if !c.copyMode {
		return nil
	}
	if err := c.sendX(ctx, "cancel", 0); err != nil {
		return err
	}
	c.copyMode = false
	return nil
}

// sendX runs a copy-mode command, repeated n times when n > 0.
func (c *Controller) sendX(ctx context.Context, command string, n int, extra ...string) error {
	args := []string{"send-keys", "-t", c.pane.ID, "-X"}
	if n > 0 {
		args = append(args, "-N", strconv.Itoa(n))
	}
	args = append(args, command)
	args = append(args, extra...)
	_, err := c.run.Run(ctx, args...)
	return err
}
