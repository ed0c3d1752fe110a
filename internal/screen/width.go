package screen

import "golang.org/x/text/width"

// RuneWidth returns the number of terminal columns r occupies.
// Only East Asian Wide runes count as two columns; fullwidth and
// ambiguous forms are treated as narrow, matching what tmux reports
// for the panes we capture.
func RuneWidth(r rune) int {
	if width.LookupRune(r).Kind() == width.EastAsianWide {
		return 2
	}
	return 1
}

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
