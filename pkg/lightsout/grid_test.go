package lightsout

import (
	"errors"
	"testing"
)

func TestGridString(t *testing.T) {
	g := Grid{{false, false, false}, {true, true, false}, {false, false, false}}
	want := ". . .\nO O .\n. . ."
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	parsed, err := ParseGrid(want)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if !parsed.Equal(g) {
		t.Fatalf("ParseGrid(String()) = %v, want %v", parsed, g)
	}
}

func TestParseGridCompactForm(t *testing.T) {
	g, err := ParseGrid("\nO..\n.O.\n\n")
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 || g.LitCount() != 2 {
		t.Fatalf("grid = %dx%d with %d lit, want 2x3 with 2", g.Rows(), g.Cols(), g.LitCount())
	}
}

func TestParseGridErrors(t *testing.T) {
	if _, err := ParseGrid("O X"); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("unknown symbol error = %v, want ErrInvalidGrid", err)
	}
	if _, err := ParseGrid("O .\nO"); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("ragged error = %v, want ErrInvalidDimension", err)
	}
	if _, err := ParseGrid("  \n"); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("empty error = %v, want ErrInvalidDimension", err)
	}
}

func TestGridLitOffGrid(t *testing.T) {
	g := Grid{{true}}
	if !g.Lit(0, 0) {
		t.Fatal("(0,0) should be lit")
	}
	if g.Lit(1, 0) || g.Lit(0, -1) {
		t.Fatal("off-grid cells should read as unlit")
	}
	var empty Grid
	if empty.Cols() != 0 || empty.Rows() != 0 {
		t.Fatal("empty grid should have no rows or columns")
	}
}

func TestGridEqualShape(t *testing.T) {
	a := Grid{{true, false}}
	if a.Equal(Grid{{true}, {false}}) {
		t.Fatal("grids with different shapes should differ")
	}
	if a.Equal(Grid{{true, false, false}}) {
		t.Fatal("rows with different lengths should differ")
	}
}
