package core

import "testing"

func TestBoolGridToggleAndCount(t *testing.T) {
	g := NewBoolGrid(4, 3)
	if g.Count() != 0 {
		t.Fatalf("new grid count = %d, want 0", g.Count())
	}
	g.Toggle(3, 2)
	g.Toggle(0, 0)
	if !g.At(3, 2) || !g.At(0, 0) {
		t.Fatal("toggled cells should be on")
	}
	if got := g.Count(); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}
	g.Toggle(3, 2)
	if g.At(3, 2) {
		t.Fatal("double toggle should restore the cell")
	}
}

func TestBoolGridIn(t *testing.T) {
	g := NewBoolGrid(2, 3)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1, 2, true},
		{2, 0, false},
		{0, 3, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tc := range cases {
		if got := g.In(tc.x, tc.y); got != tc.want {
			t.Fatalf("In(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestBoolGridRowsIsCopy(t *testing.T) {
	g := NewBoolGrid(3, 2)
	g.Set(1, 1, true)

	rows := g.Rows()
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("rows shape = %dx%d, want 2x3", len(rows), len(rows[0]))
	}
	if !rows[1][1] {
		t.Fatal("rows should reflect grid contents")
	}
	rows[0][0] = true
	if g.At(0, 0) {
		t.Fatal("mutating Rows output must not touch the grid")
	}
}

func TestNewBoolGridClampsDimensions(t *testing.T) {
	g := NewBoolGrid(0, -4)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("clamped grid = %dx%d (%d cells), want 1x1", g.W, g.H, len(g.Cells()))
	}
}
