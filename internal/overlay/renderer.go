package overlay

import (
	"io"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/easyjump/internal/jump"
)

// ResolveProfile picks the color profile for output. A configured
// profile wins. Otherwise the terminal is detected, then tmux is asked.
// A pane tty always understands cursor movement, so the result never
// drops below ANSI256 when detection fails.
func ResolveProfile(w io.Writer, configured colorprofile.Profile, environ []string) colorprofile.Profile {
	if configured > colorprofile.NoTTY {
		return configured
	}
	p := colorprofile.Detect(w, environ)
	if p <= colorprofile.NoTTY {
		p = colorprofile.Tmux(environ)
	}
	if p <= colorprofile.NoTTY {
		p = colorprofile.ANSI256
	}
	return p
}

// Renderer writes full-screen frames to a pane tty.
type Renderer struct {
	w *colorprofile.Writer
}

// NewRenderer wraps w so colors are downsampled to profile.
func NewRenderer(w io.Writer, profile colorprofile.Profile) *Renderer {
	if profile <= colorprofile.NoTTY {
		profile = colorprofile.ANSI256
	}
	return &Renderer{w: &colorprofile.Writer{Forward: w, Profile: profile}}
}

// EnterAltScreen switches to the alternate screen, saving the cursor.
func (r *Renderer) EnterAltScreen() error {
	_, err := io.WriteString(r.w.Forward, ansi.SetModeAltScreenSaveCursor)
	return err
}

// LeaveAltScreen returns to the main screen, restoring the cursor.
func (r *Renderer) LeaveAltScreen() error {
	_, err := io.WriteString(r.w.Forward, ansi.ResetModeAltScreenSaveCursor)
	return err
}

// Draw clears the screen, writes body from the top-left corner and parks
// the cursor at cursor (1-indexed).
func (r *Renderer) Draw(body string, cursor jump.Cursor) error {
	if _, err := r.w.WriteString(Frame(body, cursor)); err != nil {
		return err
	}
	return nil
}

// Frame is the byte sequence Draw writes before color downsampling.
func Frame(body string, cursor jump.Cursor) string {
	return ansi.EraseEntireScreen +
		ansi.CursorHomePosition +
		ansi.ResetStyle +
		body +
		ansi.CursorPosition(max(cursor.Column, 1), max(cursor.Line, 1))
}
