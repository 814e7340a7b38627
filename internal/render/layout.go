package render

import (
	"image"

	"lights-out/internal/core"
)

// Layout maps board cells to screen pixels. Each cell is a Scale x Scale
// square; Gap pixels on its right and bottom edges are left as grid lines.
type Layout struct {
	Size  core.Size
	Scale int
	Gap   int
}

func (l Layout) scale() int {
	if l.Scale <= 0 {
		return 1
	}
	return l.Scale
}

// Bounds returns the pixel size of the whole board.
func (l Layout) Bounds() (w, h int) {
	s := l.scale()
	return l.Size.W * s, l.Size.H * s
}

// CellAt returns the cell under the pixel (px, py). Pixels on a grid line
// still belong to the cell to their left or above.
func (l Layout) CellAt(px, py int) (y, x int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	s := l.scale()
	x, y = px/s, py/s
	if x >= l.Size.W || y >= l.Size.H {
		return 0, 0, false
	}
	return y, x, true
}

// CellRect returns the painted area of the cell at (y, x).
func (l Layout) CellRect(y, x int) image.Rectangle {
	s := l.scale()
	gap := l.Gap
	if gap < 0 || gap >= s {
		gap = 0
	}
	origin := image.Pt(x*s, y*s)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(s-gap, s-gap))}
}
