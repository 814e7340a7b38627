//go:build ebiten

package app

import (
	"image/color"

	"lights-out/internal/core"
	"lights-out/internal/render"
	"lights-out/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

type identified interface {
	ID() string
}

type moveCounter interface {
	Moves() int
}

// Game adapts a puzzle to the ebiten.Game interface.
type Game struct {
	puzzle  core.Puzzle
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *logrus.Logger

	onColor  color.Color
	offColor color.Color
	gapColor color.Color

	scale  int
	gap    int
	solved bool
}

// New constructs a Game for the provided puzzle.
func New(puzzle core.Puzzle, cfg *Config, log *logrus.Logger) *Game {
	g := &Game{
		puzzle:   puzzle,
		hud:      ui.NewHUD(puzzle, cfg.HUDWidth),
		overlay:  ui.NewOverlay(puzzle),
		log:      log,
		onColor:  color.RGBA{R: 255, G: 214, B: 92, A: 255},
		offColor: color.RGBA{R: 40, G: 44, B: 58, A: 255},
		gapColor: color.RGBA{R: 12, G: 12, B: 16, A: 255},
		scale:    cfg.Scale,
		gap:      cfg.Gap,
	}
	g.boardChanged()
	return g
}

func (g *Game) fields() logrus.Fields {
	size := g.puzzle.Size()
	fields := logrus.Fields{
		"puzzle": g.puzzle.Name(),
		"seed":   g.puzzle.Seed(),
		"rows":   size.H,
		"cols":   size.W,
	}
	if p, ok := g.puzzle.(identified); ok {
		fields["session"] = p.ID()
	}
	return fields
}

// boardChanged resizes the painter and window after a new board was dealt.
func (g *Game) boardChanged() {
	size := g.puzzle.Size()
	resize := g.painter == nil
	if !resize {
		w, h := g.painter.Size()
		resize = w != size.W || h != size.H
	}
	if resize {
		g.painter = render.NewGridPainter(size.W, size.H)
		ebiten.SetWindowSize(g.Layout(0, 0))
	}
	g.solved = g.puzzle.Solved()
	g.log.WithFields(g.fields()).Debug("new board")
}

// Reset deals the board for seed; zero draws a fresh seed.
func (g *Game) Reset(seed int64) {
	g.puzzle.Reset(seed)
	g.boardChanged()
}

func (g *Game) layout() render.Layout {
	return render.Layout{Size: g.puzzle.Size(), Scale: g.scale, Gap: g.gap}
}

// Update handles input and applies moves to the puzzle.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.puzzle.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(0)
	}

	g.overlay.Update()
	boardW, _ := g.layout().Bounds()
	if g.hud.Update(boardW) {
		g.boardChanged()
		return nil
	}

	if g.solved || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	y, x, ok := g.layout().CellAt(ebiten.CursorPosition())
	if !ok || !g.puzzle.Flip(y, x) {
		return nil
	}
	if g.puzzle.Solved() {
		g.solved = true
		fields := g.fields()
		if p, ok := g.puzzle.(moveCounter); ok {
			fields["moves"] = p.Moves()
		}
		g.log.WithFields(fields).Info("puzzle solved")
	}
	return nil
}

// Draw renders the board, or only the win banner once the puzzle is solved.
func (g *Game) Draw(screen *ebiten.Image) {
	layout := g.layout()
	if !g.solved {
		g.painter.Blit(screen, g.puzzle.Cells(), layout, g.onColor, g.offColor, g.gapColor)
	}
	g.overlay.Draw(screen, layout)

	w, _ := layout.Bounds()
	g.hud.Draw(screen, w, screen.Bounds().Dy())
}

// Layout returns the logical screen size: the board plus the HUD panel. The
// height never drops below what the HUD needs.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.layout().Bounds()
	if g.hud.Width() > 0 && h < minHUDHeight {
		h = minHUDHeight
	}
	return w + g.hud.Width(), h
}

const minHUDHeight = 320
