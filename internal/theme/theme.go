// Package theme provides the colors used to draw jump labels over a pane.
package theme

import (
	"image/color"

	"github.com/charmbracelet/x/ansi"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// If themeName is empty, theming is disabled and the built-in 256-color
// defaults are used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// LabelColor is the foreground of the label characters.
func LabelColor() color.Color {
	t := Current()
	if t == nil {
		return ansi.IndexedColor(172)
	}
	return t.BrightYellow
}

// TextColor is the foreground of the dimmed screen text around labels.
func TextColor() color.Color {
	t := Current()
	if t == nil {
		return ansi.IndexedColor(237)
	}
	return t.BrightBlack
}

// LabelAttrs returns the SGR sequence written before every label.
func LabelAttrs() string {
	return ansi.NewStyle().Bold().ForegroundColor(LabelColor()).String()
}

// TextAttrs returns the SGR sequence written before the text between labels.
func TextAttrs() string {
	return ansi.NewStyle().Reset().ForegroundColor(TextColor()).String()
}
