package app

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"lights-out/pkg/lightsout"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "LIGHTSOUT_"

// Config represents the run parameters shared by the front ends.
type Config struct {
	Puzzle   string  `env:"PUZZLE"`
	Rows     int     `env:"ROWS"`
	Cols     int     `env:"COLS"`
	Chance   float64 `env:"CHANCE"`
	Seed     int64   `env:"SEED"`
	Scale    int     `env:"SCALE"`
	Gap      int     `env:"GAP"`
	HUDWidth int     `env:"HUD_WIDTH"`
	LogLevel string  `env:"LOG_LEVEL"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Puzzle:   "lightsout",
		Rows:     lightsout.DefaultRows,
		Cols:     lightsout.DefaultCols,
		Chance:   lightsout.DefaultChance,
		Scale:    64,
		Gap:      4,
		HUDWidth: 220,
		LogLevel: "info",
	}
}

// LoadEnv overrides fields from LIGHTSOUT_* environment variables. Unset
// variables keep the current values.
func (c *Config) LoadEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet. Flag defaults are
// the current values, so call it after LoadEnv.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Puzzle, "puzzle", c.Puzzle, "puzzle to play")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.Float64Var(&c.Chance, "chance", c.Chance, "chance a light starts on (0-1)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "board seed (0 draws a random seed)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.Gap, "gap", c.Gap, "pixels between cells")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Board returns the engine configuration described by c.
func (c *Config) Board() lightsout.Config {
	return lightsout.Config{Rows: c.Rows, Cols: c.Cols, Chance: c.Chance, Seed: c.Seed}
}

// PuzzleOptions renders the puzzle-facing fields as factory options.
func (c *Config) PuzzleOptions() map[string]string {
	return map[string]string{
		"rows":   strconv.Itoa(c.Rows),
		"cols":   strconv.Itoa(c.Cols),
		"chance": strconv.FormatFloat(c.Chance, 'f', -1, 64),
		"seed":   strconv.FormatInt(c.Seed, 10),
	}
}

// NewLogger builds a text logger writing to out at the configured level.
func (c *Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger, nil
}
