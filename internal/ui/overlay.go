//go:build ebiten

package ui

import (
	"image/color"

	"lights-out/internal/core"
	"lights-out/internal/render"
	"lights-out/pkg/lightsout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type neighborhoodProvider interface {
	Neighborhood(y, x int) []lightsout.Coord
}

// WinMessage is shown in place of the board once the puzzle is solved.
const WinMessage = "You've won!"

// Overlay draws the flip preview and the win banner on top of the board.
type Overlay struct {
	puzzle      core.Puzzle
	showPreview bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(puzzle core.Puzzle) *Overlay {
	return &Overlay{puzzle: puzzle, showPreview: true}
}

// Update toggles the flip preview with the P key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showPreview = !o.showPreview
	}
}

// Draw renders the overlay for the given layout.
func (o *Overlay) Draw(screen *ebiten.Image, layout render.Layout) {
	if o.puzzle.Solved() {
		o.drawWin(screen, layout)
		return
	}
	if o.showPreview {
		o.drawPreview(screen, layout)
	}
}

func (o *Overlay) drawPreview(screen *ebiten.Image, layout render.Layout) {
	provider, ok := o.puzzle.(neighborhoodProvider)
	if !ok {
		return
	}
	y, x, ok := layout.CellAt(ebiten.CursorPosition())
	if !ok {
		return
	}
	for _, c := range provider.Neighborhood(y, x) {
		r := layout.CellRect(c.Y, c.X)
		vector.StrokeRect(screen, float32(r.Min.X)+1, float32(r.Min.Y)+1, float32(r.Dx())-2, float32(r.Dy())-2, 2, previewColor, false)
	}
}

func (o *Overlay) drawWin(screen *ebiten.Image, layout render.Layout) {
	w, h := layout.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), winBackdrop, false)

	face := basicfont.Face7x13
	lines := []string{WinMessage, "N: new game", "R: replay"}
	lineH := face.Metrics().Height.Ceil() + 6
	top := (h - lineH*len(lines)) / 2
	for i, line := range lines {
		width := text.BoundString(face, line).Dx()
		clr := labelColor
		if i == 0 {
			clr = titleColor
		}
		text.Draw(screen, line, face, (w-width)/2, top+(i+1)*lineH, clr)
	}
}

var (
	previewColor = color.RGBA{R: 120, G: 200, B: 255, A: 200}
	winBackdrop  = color.RGBA{R: 10, G: 10, B: 14, A: 255}
)
