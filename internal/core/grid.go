package core

// BoolGrid stores a 2D grid of on/off cells in row-major order.
type BoolGrid struct {
	W, H int
	data []bool
}

// NewBoolGrid allocates an all-off grid with the given dimensions. Callers are
// expected to validate dimensions; non-positive values are clamped to 1.
func NewBoolGrid(w, h int) *BoolGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BoolGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *BoolGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) addresses a cell on the grid.
func (g *BoolGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell value at (x, y). The coordinates must be in range.
func (g *BoolGrid) At(x, y int) bool { return g.data[g.Index(x, y)] }

// Set assigns the cell value at (x, y). The coordinates must be in range.
func (g *BoolGrid) Set(x, y int, v bool) { g.data[g.Index(x, y)] = v }

// Toggle inverts the cell at (x, y). The coordinates must be in range.
func (g *BoolGrid) Toggle(x, y int) {
	i := g.Index(x, y)
	g.data[i] = !g.data[i]
}

// Count returns the number of cells that are on.
func (g *BoolGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Rows returns a freshly allocated [y][x] copy of the grid.
func (g *BoolGrid) Rows() [][]bool {
	rows := make([][]bool, g.H)
	for y := range rows {
		row := make([]bool, g.W)
		copy(row, g.data[y*g.W:(y+1)*g.W])
		rows[y] = row
	}
	return rows
}
