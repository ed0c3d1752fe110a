package tmux

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const paneFormat = "#{pane_id},#{pane_tty},#{pane_width},#{pane_height}," +
	"#{cursor_x},#{cursor_y},#{history_size},#{scroll_position},#{alternate_on}"

// PaneInfo describes the pane easyjump runs against.
type PaneInfo struct {
	ID          string
	TTY         string
	Width       int
	Height      int
	CursorX     int // 0-indexed
	CursorY     int // 0-indexed
	HistorySize int
	// ScrollPosition is only meaningful when InCopyMode is set.
	ScrollPosition int
	InCopyMode     bool
	AlternateOn    bool
}

// ParsePaneInfo parses the output of display-message with paneFormat.
func ParsePaneInfo(s string) (PaneInfo, error) {
	fields := strings.Split(trimNewline(s), ",")
	if len(fields) != 9 {
		return PaneInfo{}, fmt.Errorf("unexpected pane info %q", s)
	}

	var info PaneInfo
	info.ID = fields[0]
	info.TTY = fields[1]

	ints := []struct {
		name string
		dst  *int
		raw  string
	}{
		{"pane_width", &info.Width, fields[2]},
		{"pane_height", &info.Height, fields[3]},
		{"cursor_x", &info.CursorX, fields[4]},
		{"cursor_y", &info.CursorY, fields[5]},
		{"history_size", &info.HistorySize, fields[6]},
	}
	for _, f := range ints {
		n, err := strconv.Atoi(f.raw)
		if err != nil {
			return PaneInfo{}, fmt.Errorf("invalid %s %q: %w", f.name, f.raw, err)
		}
		*f.dst = n
	}

	if fields[7] != "" {
		n, err := strconv.Atoi(fields[7])
		if err != nil {
			return PaneInfo{}, fmt.Errorf("invalid scroll_position %q: %w", fields[7], err)
		}
		info.ScrollPosition = n
		info.InCopyMode = true
	}
	info.AlternateOn = fields[8] == "1"
	return info, nil
}

// QueryPane asks tmux for the current pane.
func QueryPane(ctx context.Context, r Runner) (PaneInfo, error) {
	out, err := r.Run(ctx, "display-message", "-p", paneFormat)
	if err != nil {
		return PaneInfo{}, err
	}
	return ParsePaneInfo(out)
}

// AlternateScreenAllowed reports whether the overlay may use the alternate
// screen: the pane must not be on it already and tmux must allow it.
func AlternateScreenAllowed(ctx context.Context, r Runner, info PaneInfo) (bool, error) {
	if info.AlternateOn {
		return false, nil
	}
	out, err := r.Run(ctx, "show-option", "-gv", "alternate-screen")
	if err != nil {
		return false, err
	}
	return trimNewline(out) == "on", nil
}

func historySize(ctx context.Context, r Runner, id string) (int, error) {
	out, err := r.Run(ctx, "display-message", "-t", id, "-p", "#{history_size}")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(trimNewline(out))
	if err != nil {
		return 0, fmt.Errorf("invalid history_size %q: %w", out, err)
	}
	return n, nil
}
