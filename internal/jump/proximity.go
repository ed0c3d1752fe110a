package jump

import (
	"cmp"
	"math"
	"slices"
)

// Distance measures how far p is from the cursor. Line differences are
// doubled because a terminal cell is roughly twice as tall as it is wide.
func Distance(p Position, c Cursor) float64 {
	dx := p.Column - c.Column
	dy := 2 * (p.Line - c.Line)
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// Assign binds labels to positions so that the k-th label goes to the
// k-th closest position to the cursor. Ties keep scan order. When there
// are fewer labels than positions only the closest positions get one.
// The result is in scan order.
func Assign(labels []string, positions []Position, cursor Cursor) []Match {
	if len(labels) == 0 || len(positions) == 0 {
		return nil
	}

	dist := make([]float64, len(positions))
	rank := make([]int, len(positions))
	for i, p := range positions {
		dist[i] = Distance(p, cursor)
		rank[i] = i
	}
	slices.SortStableFunc(rank, func(a, b int) int {
		return cmp.Compare(dist[a], dist[b])
	})

	bound := make([]string, len(positions))
	for r, idx := range rank[:min(len(labels), len(rank))] {
		bound[idx] = labels[r]
	}

	matches := make([]Match, 0, min(len(labels), len(positions)))
	for i, p := range positions {
		if bound[i] == "" {
			continue
		}
		matches = append(matches, Match{Position: p, Label: bound[i]})
	}
	return matches
}
