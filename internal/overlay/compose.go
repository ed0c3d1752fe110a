// Package overlay draws jump labels over a captured pane.
package overlay

import (
	"slices"
	"strings"

	"github.com/Gaurav-Gosain/easyjump/internal/jump"
	"github.com/Gaurav-Gosain/easyjump/internal/pool"
	"github.com/Gaurav-Gosain/easyjump/internal/screen"
)

// Compose returns the pane text with every label written over the text
// at its match. Text between labels is prefixed with textAttrs and every
// label with labelAttrs. When a label covers wide glyphs it is padded
// with spaces so the rest of the line keeps its columns.
func Compose(lines screen.Lines, matches []jump.Match, labelAttrs, textAttrs string) string {
	rs := pool.GetRunes()
	defer pool.PutRunes(rs)
	pool.AppendRunes(rs, lines.Raw())
	raw := *rs

	ordered := slices.Clone(matches)
	slices.SortStableFunc(ordered, func(a, b jump.Match) int {
		return a.Offset - b.Offset
	})

	sb := pool.GetBuffer()
	defer pool.PutBuffer(sb)
	offset := 0
	for _, m := range ordered {
		label := []rune(m.Label)
		if m.Offset < offset || m.Offset+len(label) > len(raw) {
			continue
		}
		if offset < m.Offset {
			sb.WriteString(textAttrs)
			sb.WriteString(string(raw[offset:m.Offset]))
		}
		sb.WriteString(labelAttrs)
		sb.WriteString(m.Label)

		end := m.Offset + len(label)
		if pad := screen.StringWidth(string(raw[m.Offset:end])) - screen.StringWidth(m.Label); pad > 0 {
			sb.WriteString(textAttrs)
			sb.WriteString(strings.Repeat(" ", pad))
		}
		offset = end
	}
	if offset < len(raw) {
		sb.WriteString(textAttrs)
		sb.WriteString(string(raw[offset:]))
	}
	return sb.String()
}
