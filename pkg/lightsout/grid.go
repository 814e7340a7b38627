package lightsout

import (
	"fmt"
	"strings"
)

const (
	litSymbol   = 'O'
	unlitSymbol = '.'
)

// Grid is a read-only snapshot of a board, indexed [y][x]. Snapshots are deep
// copies; changing one never affects the board it came from.
type Grid [][]bool

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Lit reports whether (y, x) is lit. Off-grid cells read as unlit.
func (g Grid) Lit(y, x int) bool {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return false
	}
	return g[y][x]
}

// LitCount returns the number of lit cells.
func (g Grid) LitCount() int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both snapshots have the same shape and contents.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(o[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders one line per row, 'O' for lit and '.' for unlit cells.
func (g Grid) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, cell := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if cell {
				sb.WriteByte(litSymbol)
			} else {
				sb.WriteByte(unlitSymbol)
			}
		}
	}
	return sb.String()
}

// ParseGrid decodes the text produced by Grid.String. Whitespace between
// cells is optional and blank lines are skipped.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var row []bool
		for _, r := range line {
			switch r {
			case litSymbol:
				row = append(row, true)
			case unlitSymbol:
				row = append(row, false)
			case ' ', '\t':
			default:
				return nil, fmt.Errorf("%w: symbol %q", ErrInvalidGrid, r)
			}
		}
		if len(g) > 0 && len(row) != len(g[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, len(g), len(row), len(g[0]))
		}
		g = append(g, row)
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimension)
	}
	return g, nil
}
