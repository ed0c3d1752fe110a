package jump

import (
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/easyjump/internal/screen"
)

func TestDistance(t *testing.T) {
	c := Cursor{Column: 1, Line: 1}

	if d := Distance(Position{Line: 1, Column: 3}, c); d != 2 {
		t.Errorf("horizontal distance = %v, want 2", d)
	}
	if d := Distance(Position{Line: 2, Column: 1}, c); d != 2 {
		t.Errorf("vertical distance = %v, want 2", d)
	}
	if d := Distance(Position{Line: 3, Column: 4}, c); d != 5 {
		t.Errorf("diagonal distance = %v, want 5", d)
	}
}

func TestAssign_TiesKeepScanOrder(t *testing.T) {
	positions := Find(screen.NewLines("xxk\nk", 5), "k", true, nil)
	matches := Assign([]string{"f", "j"}, positions, Cursor{Column: 1, Line: 1})

	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if matches[0].Line != 1 || matches[0].Label != "f" {
		t.Errorf("Expected the first match in scan order to get %q, got %+v", "f", matches[0])
	}
	if matches[1].Line != 2 || matches[1].Label != "j" {
		t.Errorf("Expected the second match to get %q, got %+v", "j", matches[1])
	}
}

func TestAssign_ClosestGetsFirstLabel(t *testing.T) {
	positions := Find(screen.NewLines("xxk\nk", 5), "k", true, nil)
	matches := Assign([]string{"f", "j"}, positions, Cursor{Column: 1, Line: 2})

	if matches[1].Label != "f" || matches[0].Label != "j" {
		t.Errorf("Expected the match under the cursor to get %q, got %+v", "f", matches)
	}
}

func TestAssign_Monotonic(t *testing.T) {
	text := strings.Repeat("a b  a   b a\n", 12)
	lines := screen.NewLines(strings.TrimSuffix(text, "\n"), 40)
	positions := Find(lines, "a", true, nil)
	labels, _ := Allocate(2, len(positions), DefaultAlphabet)
	cursor := Cursor{Column: 6, Line: 7}

	rank := make(map[string]int, len(labels))
	for i, l := range labels {
		rank[l] = i
	}

	matches := Assign(labels, positions, cursor)
	for _, a := range matches {
		for _, b := range matches {
			if Distance(a.Position, cursor) < Distance(b.Position, cursor) && rank[a.Label] > rank[b.Label] {
				t.Fatalf("%v (label %q) is closer than %v (label %q) but has a later label",
					a.Position, a.Label, b.Position, b.Label)
			}
		}
	}
}

func TestAssign_TruncatedPoolKeepsClosest(t *testing.T) {
	positions := Find(screen.NewLines("a a a a a", 20), "a", true, nil)
	matches := Assign([]string{"f", "j"}, positions, Cursor{Column: 9, Line: 1})

	if len(matches) != 2 {
		t.Fatalf("Expected 2 bound matches, got %d", len(matches))
	}
	if matches[0].Column != 7 || matches[0].Label != "j" {
		t.Errorf("Unexpected first bound match: %+v", matches[0])
	}
	if matches[1].Column != 9 || matches[1].Label != "f" {
		t.Errorf("Unexpected second bound match: %+v", matches[1])
	}
}

func TestAssign_Empty(t *testing.T) {
	if m := Assign(nil, []Position{{Line: 1}}, Cursor{}); m != nil {
		t.Errorf("Expected nil without labels, got %v", m)
	}
	if m := Assign([]string{"f"}, nil, Cursor{}); m != nil {
		t.Errorf("Expected nil without positions, got %v", m)
	}
}
