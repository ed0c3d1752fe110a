package jump

import "strings"

// Resolve returns the position bound to exactly typed.
func Resolve(typed string, matches []Match) (Position, bool) {
	for _, m := range matches {
		if m.Label == typed {
			return m.Position, true
		}
	}
	return Position{}, false
}

// HasPrefix reports whether any bound label starts with prefix.
func HasPrefix(prefix string, matches []Match) bool {
	for _, m := range matches {
		if strings.HasPrefix(m.Label, prefix) {
			return true
		}
	}
	return false
}
