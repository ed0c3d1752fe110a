// Package screen models captured pane content.
//
// A capture is split into lines; each line keeps the characters tmux
// reported plus the padding (trailing blanks and line break) that was
// on screen after them, so the whole pane can be reassembled and
// repainted character for character.
package screen

import (
	"strings"
	"unicode/utf8"
)

// Line is a single captured row.
type Line struct {
	Chars   string // characters as displayed
	Padding string // trailing blanks up to the pane width, then "\r\n" unless last
}

// Len returns the number of characters (runes) the line contributes to
// the reassembled buffer, padding included.
func (l Line) Len() int {
	return utf8.RuneCountInString(l.Chars) + utf8.RuneCountInString(l.Padding)
}

// Lines is an ordered pane capture.
type Lines []Line

// NewLines splits captured text into lines padded to width.
// The captured text must not carry the final newline that
// `tmux capture-pane -p` appends.
func NewLines(captured string, width int) Lines {
	rows := strings.Split(captured, "\n")
	lines := make(Lines, 0, len(rows))
	for i, chars := range rows {
		pad := width - StringWidth(chars)
		if pad < 0 {
			pad = 0
		}
		padding := strings.Repeat(" ", pad)
		if i < len(rows)-1 {
			padding += "\r\n"
		}
		lines = append(lines, Line{Chars: chars, Padding: padding})
	}
	return lines
}

// Raw reassembles the full-screen buffer.
func (ls Lines) Raw() string {
	var sb strings.Builder
	for _, l := range ls {
		sb.WriteString(l.Chars)
		sb.WriteString(l.Padding)
	}
	return sb.String()
}

// Line returns the 1-indexed line n, or false when n is out of range.
func (ls Lines) Line(n int) (Line, bool) {
	if n < 1 || n > len(ls) {
		return Line{}, false
	}
	return ls[n-1], true
}
