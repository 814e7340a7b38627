package lightsout

import (
	"fmt"
	"math"
	"strconv"
)

// Defaults used when the caller does not specify board parameters.
const (
	DefaultRows   = 5
	DefaultCols   = 7
	DefaultChance = 0.2

	// MaxCells bounds rows*cols so the grid can always be allocated.
	MaxCells = 1 << 24
)

// Config holds the parameters a board is generated from.
type Config struct {
	Rows   int
	Cols   int
	Chance float64

	// Seed drives board generation. Zero asks for a random seed.
	Seed int64
}

// DefaultConfig returns the standard 5x7 board with a 20% lit-start chance.
func DefaultConfig() Config {
	return Config{Rows: DefaultRows, Cols: DefaultCols, Chance: DefaultChance}
}

// Validate checks the dimensions and probability.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, c.Rows, c.Cols)
	}
	if c.Rows > MaxCells/c.Cols {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimension, c.Rows, c.Cols, MaxCells)
	}
	if math.IsNaN(c.Chance) || c.Chance < 0 || c.Chance > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, c.Chance)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values are ignored and the default is kept.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Chance = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
