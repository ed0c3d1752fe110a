package jump

import (
	"unicode/utf8"

	"github.com/Gaurav-Gosain/easyjump/internal/screen"
)

// Options tune one search.
type Options struct {
	SmartCase bool
	Alphabet  string
	Regions   []Region
}

// Plan is the outcome of searching a capture for a key: the positions
// found and, when there is more than one, the labels bound to them.
type Plan struct {
	Key         string
	Positions   []Position // scan order
	Matches     []Match    // labeled positions, scan order
	LabelLength int        // 0 when nothing was labeled
}

// NewPlan searches lines for key and labels the results.
func NewPlan(lines screen.Lines, key string, cursor Cursor, opts Options) Plan {
	p := Plan{
		Key:       key,
		Positions: Find(lines, key, opts.SmartCase, opts.Regions),
	}
	if len(p.Positions) < 2 {
		return p
	}

	labels, length := Allocate(utf8.RuneCountInString(key), len(p.Positions), opts.Alphabet)
	p.Matches = Assign(labels, p.Positions, cursor)
	p.LabelLength = length
	return p
}

// Empty reports whether the key was not found.
func (p Plan) Empty() bool {
	return len(p.Positions) == 0
}

// Direct returns the only match when there is exactly one. Such a plan
// needs no labels.
func (p Plan) Direct() (Position, bool) {
	if len(p.Positions) != 1 {
		return Position{}, false
	}
	return p.Positions[0], true
}

// Unreachable returns how many matches got no label because the label
// length is capped by the key length.
func (p Plan) Unreachable() int {
	if len(p.Positions) < 2 {
		return 0
	}
	return len(p.Positions) - len(p.Matches)
}

// Resolve returns the position bound to label.
func (p Plan) Resolve(label string) (Position, bool) {
	return Resolve(label, p.Matches)
}
