//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image based on on/off cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image, draws it scaled to
// the layout and paints the grid lines in the gap color.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool, layout Layout, on, off, gap color.Color) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	scale := float64(layout.scale())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(gp.img, op)

	if layout.Gap <= 0 || layout.Gap >= layout.scale() {
		return
	}
	w, h := layout.Bounds()
	g := float32(layout.Gap)
	for x := 1; x <= gp.w; x++ {
		vector.DrawFilledRect(dst, float32(x)*float32(scale)-g, 0, g, float32(h), gap, false)
	}
	for y := 1; y <= gp.h; y++ {
		vector.DrawFilledRect(dst, 0, float32(y)*float32(scale)-g, float32(w), g, gap, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
