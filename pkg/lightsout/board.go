// Package lightsout implements the game state of the Lights Out puzzle:
// random board generation, the neighbor-flip rule and win detection.
//
// A Board is not safe for concurrent use; callers confine each board to one
// goroutine or guard it themselves.
package lightsout

import (
	"fmt"
	"math/rand/v2"

	"lights-out/internal/core"
	prng "lights-out/pkg/core"
)

// Board owns the grid of a single game.
type Board struct {
	cfg  Config
	seed int64
	grid *core.BoolGrid
	rng  *rand.Rand
}

// New creates a board with nrows x ncols cells, each lit with probability
// chance, using a randomly drawn seed.
func New(nrows, ncols int, chance float64) (*Board, error) {
	return NewWithConfig(Config{Rows: nrows, Cols: ncols, Chance: chance})
}

// NewWithConfig creates a board from cfg. A zero cfg.Seed draws a random seed.
func NewWithConfig(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed, err := resolveSeed(cfg.Seed)
	if err != nil {
		return nil, err
	}
	cfg.Seed = seed
	b := &Board{cfg: cfg, seed: seed, rng: prng.NewRNG(seed).Source()}
	b.generate()
	return b, nil
}

// NewWithRand creates a board drawing cells from r. The first reset without
// WithSeed draws its seed from r.
func NewWithRand(nrows, ncols int, chance float64, r *rand.Rand) (*Board, error) {
	cfg := Config{Rows: nrows, Cols: ncols, Chance: chance}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("new board: nil random source")
	}
	b := &Board{cfg: cfg, rng: r}
	b.generate()
	return b, nil
}

// FromRows creates a board with the exact layout given in rows, indexed
// [y][x]. The rows are copied. Later resets use DefaultChance unless
// overridden and draw a random seed unless WithSeed is given.
func FromRows(rows [][]bool) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidDimension)
	}
	ncols := len(rows[0])
	for y, row := range rows {
		if len(row) != ncols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, y, len(row), ncols)
		}
	}
	grid := core.NewBoolGrid(ncols, len(rows))
	for y, row := range rows {
		for x, lit := range row {
			grid.Set(x, y, lit)
		}
	}
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = len(rows), ncols
	return &Board{cfg: cfg, grid: grid}, nil
}

func resolveSeed(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	drawn, err := prng.NewSeed()
	if err != nil {
		return 0, fmt.Errorf("new board: %w", err)
	}
	return drawn, nil
}

func (b *Board) generate() {
	grid := core.NewBoolGrid(b.cfg.Cols, b.cfg.Rows)
	prng.FillChance(b.rng, grid.Cells(), b.cfg.Chance)
	b.grid = grid
}

// Config returns the parameters of the current board.
func (b *Board) Config() Config { return b.cfg }

// Seed returns the seed that reproduces the current board through
// NewWithConfig(b.Config()). It is zero for boards built with NewWithRand or
// FromRows until their first reset.
func (b *Board) Seed() int64 { return b.seed }

// Size returns the board dimensions.
func (b *Board) Size() (rows, cols int) { return b.grid.H, b.grid.W }

// Grid returns a snapshot of the board.
func (b *Board) Grid() Grid { return Grid(b.grid.Rows()) }

// Lit reports whether the cell at (y, x) is lit.
func (b *Board) Lit(y, x int) (bool, error) {
	if !b.grid.In(x, y) {
		return false, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfRange, Coord{Y: y, X: x}, b.grid.H, b.grid.W)
	}
	return b.grid.At(x, y), nil
}

// LitCount returns the number of lit cells.
func (b *Board) LitCount() int { return b.grid.Count() }

// IsWon reports whether every light is off.
func (b *Board) IsWon() bool { return b.LitCount() == 0 }

// Neighborhood returns the on-board cells a flip at (y, x) toggles: the
// center and its orthogonal neighbors, each at most once. The center itself
// may be off the board, in which case only its on-board neighbors count.
func (b *Board) Neighborhood(y, x int) []Coord {
	cells := make([]Coord, 0, len(flipOffsets))
	for _, d := range flipOffsets {
		c := Coord{Y: y + d.Y, X: x + d.X}
		if b.grid.In(c.X, c.Y) {
			cells = append(cells, c)
		}
	}
	return cells
}

// Flip toggles the cell at (y, x) and its orthogonal neighbors, skipping any
// that fall off the board, and returns the resulting snapshot.
func (b *Board) Flip(y, x int) Grid {
	for _, c := range b.Neighborhood(y, x) {
		b.grid.Toggle(c.X, c.Y)
	}
	return b.Grid()
}

// FlipCoord is Flip addressed by a Coord.
func (b *Board) FlipCoord(c Coord) Grid { return b.Flip(c.Y, c.X) }

// ResetOption overrides a generation parameter in Reset.
type ResetOption func(*resetParams)

type resetParams struct {
	cfg    Config
	seeded bool
}

// WithSize changes the board dimensions.
func WithSize(rows, cols int) ResetOption {
	return func(p *resetParams) {
		p.cfg.Rows, p.cfg.Cols = rows, cols
	}
}

// WithChance changes the lit-start probability.
func WithChance(chance float64) ResetOption {
	return func(p *resetParams) { p.cfg.Chance = chance }
}

// WithSeed reseeds the generator so the reset replays the board that seed
// produces. Zero draws a fresh random seed.
func WithSeed(seed int64) ResetOption {
	return func(p *resetParams) {
		p.cfg.Seed = seed
		p.seeded = true
	}
}

// Reset regenerates the grid the same way construction does. Without WithSeed
// the next seed is drawn from the current generator, so consecutive resets deal
// different boards and a seeded board's resets are reproducible. On error the
// current board is left unchanged.
func (b *Board) Reset(opts ...ResetOption) error {
	p := resetParams{cfg: b.cfg}
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.cfg.Validate(); err != nil {
		return fmt.Errorf("reset board: %w", err)
	}
	seed := p.cfg.Seed
	switch {
	case p.seeded || b.rng == nil:
		var err error
		if seed, err = resolveSeed(seed); err != nil {
			return err
		}
	default:
		// Take the next seed from the current generator so the board stays replayable.
		if seed = int64(b.rng.Uint64()); seed == 0 {
			seed = 1
		}
	}
	p.cfg.Seed = seed
	b.seed = seed
	b.rng = prng.NewRNG(seed).Source()
	b.cfg = p.cfg
	b.generate()
	return nil
}
