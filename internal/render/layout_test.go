package render

import (
	"image"
	"testing"

	"lights-out/internal/core"
)

func TestLayoutCellAt(t *testing.T) {
	l := Layout{Size: core.Size{W: 7, H: 5}, Scale: 48, Gap: 4}
	cases := []struct {
		px, py int
		y, x   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{47, 47, 0, 0, true},
		{48, 0, 0, 1, true},
		{7*48 - 1, 5*48 - 1, 4, 6, true},
		{7 * 48, 0, 0, 0, false},
		{0, 5 * 48, 0, 0, false},
		{-1, 10, 0, 0, false},
	}
	for _, tc := range cases {
		y, x, ok := l.CellAt(tc.px, tc.py)
		if ok != tc.ok || (ok && (y != tc.y || x != tc.x)) {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tc.px, tc.py, y, x, ok, tc.y, tc.x, tc.ok)
		}
	}
	if w, h := l.Bounds(); w != 336 || h != 240 {
		t.Fatalf("Bounds() = %dx%d, want 336x240", w, h)
	}
}

func TestLayoutCellRect(t *testing.T) {
	l := Layout{Size: core.Size{W: 3, H: 3}, Scale: 10, Gap: 2}
	if got, want := l.CellRect(1, 2), image.Rect(20, 10, 28, 18); got != want {
		t.Fatalf("CellRect(1,2) = %v, want %v", got, want)
	}

	l.Gap = 10
	if got, want := l.CellRect(0, 0), image.Rect(0, 0, 10, 10); got != want {
		t.Fatalf("oversized gap should be ignored, got %v want %v", got, want)
	}

	l.Scale = 0
	if y, x, ok := l.CellAt(2, 1); !ok || y != 1 || x != 2 {
		t.Fatalf("zero scale should act as 1, got (%d,%d,%v)", y, x, ok)
	}
}
