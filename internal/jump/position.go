// Package jump is the match-and-label engine behind easyjump.
//
// It finds every occurrence of a short key in a pane capture, hands out
// the shortest unique labels it can (nearest matches first) and resolves
// a typed label back to a screen position. Everything here is pure: no
// I/O, no globals, identical output for identical input.
package jump

import "fmt"

// Position locates a match on screen.
type Position struct {
	Line   int // 1-indexed line
	Char   int // 1-indexed character within the line
	Column int // 1-indexed display column, wide glyphs count twice
	Offset int // 0-indexed character offset into the reassembled screen buffer
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Cursor is the pane cursor in 1-indexed (column, line) space.
type Cursor struct {
	Column int
	Line   int
}

// Region is an inclusive rectangle in 1-indexed (column, line) space.
type Region struct {
	X1, Y1 int
	X2, Y2 int
}

// Contains reports whether (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X1 && y >= r.Y1 && x <= r.X2 && y <= r.Y2
}

// inRegions reports whether (x, y) lies in any region. No regions means
// no filter.
func inRegions(regions []Region, x, y int) bool {
	if len(regions) == 0 {
		return true
	}
	for _, r := range regions {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Match binds a label to a position.
type Match struct {
	Position
	Label string
}

// String formats m as label@line:column.
func (m Match) String() string {
	return m.Label + "@" + m.Position.String()
}
