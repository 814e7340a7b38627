// Package session adapts a lightsout.Board to the core.Puzzle contract used by
// the interactive front ends.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"lights-out/internal/core"
	"lights-out/pkg/lightsout"
)

// Name is the registry key of the Lights Out puzzle.
const Name = "lightsout"

// Bounds for the HUD controls.
const (
	MaxRows = 16
	MaxCols = 16
)

// Session is one interactive Lights Out game.
type Session struct {
	id    string
	board *lightsout.Board
	seed  int64
	moves int
}

// New creates a session dealing its first board from cfg.
func New(cfg lightsout.Config) (*Session, error) {
	board, err := lightsout.NewWithConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return &Session{id: uuid.NewString(), board: board, seed: board.Seed()}, nil
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Name returns the puzzle identifier.
func (s *Session) Name() string { return Name }

// Size returns the board dimensions.
func (s *Session) Size() core.Size {
	rows, cols := s.board.Size()
	return core.Size{W: cols, H: rows}
}

// Board exposes the underlying engine for read access.
func (s *Session) Board() *lightsout.Board { return s.board }

// Config returns the generation parameters of the current board.
func (s *Session) Config() lightsout.Config { return s.board.Config() }

// Seed returns the seed of the current board.
func (s *Session) Seed() int64 { return s.seed }

// Neighborhood returns the cells a flip at (y, x) would toggle.
func (s *Session) Neighborhood(y, x int) []lightsout.Coord {
	return s.board.Neighborhood(y, x)
}

// Moves returns the number of flips since the last reset.
func (s *Session) Moves() int { return s.moves }

// Cells returns a row-major copy of the board.
func (s *Session) Cells() []bool {
	rows, cols := s.board.Size()
	cells := make([]bool, 0, rows*cols)
	for _, row := range s.board.Grid() {
		cells = append(cells, row...)
	}
	return cells
}

// Solved reports whether every light is off.
func (s *Session) Solved() bool { return s.board.IsWon() }

// Flip plays a move at (y, x). Moves on a solved board or off the board are
// refused and reported as false.
func (s *Session) Flip(y, x int) bool {
	if s.board.IsWon() {
		return false
	}
	if _, err := s.board.Lit(y, x); err != nil {
		return false
	}
	s.board.Flip(y, x)
	s.moves++
	return true
}

// Reset deals the board for seed with the current parameters. A zero seed
// draws a fresh one.
func (s *Session) Reset(seed int64) {
	s.reset(lightsout.WithSeed(seed))
}

// Replay deals the current board again from its seed.
func (s *Session) Replay() {
	s.Reset(s.seed)
}

func (s *Session) reset(opts ...lightsout.ResetOption) bool {
	if err := s.board.Reset(opts...); err != nil {
		return false
	}
	s.seed = s.board.Seed()
	s.moves = 0
	return true
}

// Parameters reports the board parameters and game status for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	cfg := s.board.Config()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", cfg.Rows),
				core.IntParam("cols", "Columns", cfg.Cols),
				core.FloatParam("chance", "Lit chance", cfg.Chance),
			},
		},
		{
			Name: "Game",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", s.seed),
				core.IntParam("lit", "Lit", s.board.LitCount()),
				core.IntParam("moves", "Moves", s.moves),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: MaxRows, HasMin: true, HasMax: true},
		{Key: "cols", Label: "Columns", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: MaxCols, HasMin: true, HasMax: true},
		{Key: "chance", Label: "Lit chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter changes rows or cols and redeals the board with the same
// seed.
func (s *Session) SetIntParameter(key string, value int) bool {
	cfg := s.board.Config()
	switch key {
	case "rows":
		if value > MaxRows {
			return false
		}
		return s.reset(lightsout.WithSize(value, cfg.Cols), lightsout.WithSeed(s.seed))
	case "cols":
		if value > MaxCols {
			return false
		}
		return s.reset(lightsout.WithSize(cfg.Rows, value), lightsout.WithSeed(s.seed))
	default:
		return false
	}
}

// SetFloatParameter changes the lit chance and redeals the board with the same
// seed.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != "chance" {
		return false
	}
	return s.reset(lightsout.WithChance(value), lightsout.WithSeed(s.seed))
}

func init() {
	core.Register(Name, func(cfg map[string]string) (core.Puzzle, error) {
		return New(lightsout.FromMap(cfg))
	})
}
