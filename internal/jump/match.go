package jump

import (
	"unicode"

	"github.com/Gaurav-Gosain/easyjump/internal/screen"
)

// Find returns every occurrence of key in lines, top to bottom and left
// to right.
//
// Matches never overlap: once a candidate is found at character i the
// search resumes at i+len(key), even when the candidate is then rejected
// by the case rule or the region filter. With smartCase, a key without
// uppercase letters matches case-insensitively; any uppercase letter in
// the key requires an exact match.
func Find(lines screen.Lines, key string, smartCase bool, regions []Region) []Position {
	keyRunes := []rune(key)
	k := len(keyRunes)
	if k == 0 {
		return nil
	}
	foldable := smartCase && !hasUpper(keyRunes)

	var positions []Position
	lineOffset := 0
	for lineIdx, line := range lines {
		chars := []rune(line.Chars)

		// col tracks the display width of chars[:colIdx]
		col, colIdx := 0, 0
		for i := 0; i+k <= len(chars); {
			if !foldEqual(chars[i:i+k], keyRunes) {
				i++
				continue
			}
			candidate := chars[i : i+k]
			start := i
			i += k

			if !exactEqual(candidate, keyRunes) && !foldable {
				continue
			}

			for ; colIdx < start; colIdx++ {
				col += screen.RuneWidth(chars[colIdx])
			}
			if !inRegions(regions, col+1, lineIdx+1) {
				continue
			}

			positions = append(positions, Position{
				Line:   lineIdx + 1,
				Char:   start + 1,
				Column: col + 1,
				Offset: lineOffset + start,
			})
		}

		lineOffset += line.Len()
	}
	return positions
}

func hasUpper(rs []rune) bool {
	for _, r := range rs {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func foldEqual(a, b []rune) bool {
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}

func exactEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
