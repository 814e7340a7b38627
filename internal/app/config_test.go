package app

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"lights-out/pkg/lightsout"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if got := cfg.Board(); got != lightsout.DefaultConfig() {
		t.Fatalf("board config = %+v, want %+v", got, lightsout.DefaultConfig())
	}
	if cfg.Puzzle != "lightsout" {
		t.Fatalf("puzzle = %q, want lightsout", cfg.Puzzle)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LIGHTSOUT_ROWS", "3")
	t.Setenv("LIGHTSOUT_CHANCE", "0.5")
	t.Setenv("LIGHTSOUT_SEED", "77")
	t.Setenv("LIGHTSOUT_LOG_LEVEL", "debug")

	cfg := NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.Rows != 3 || cfg.Chance != 0.5 || cfg.Seed != 77 || cfg.LogLevel != "debug" {
		t.Fatalf("config = %+v, want env overrides", cfg)
	}
	if cfg.Cols != lightsout.DefaultCols {
		t.Fatalf("cols = %d, unset variables should keep defaults", cfg.Cols)
	}
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("LIGHTSOUT_ROWS", "many")
	err := NewConfig().LoadEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("LIGHTSOUT_COLS", "9")
	cfg := NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-rows", "4"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Rows != 4 || cfg.Cols != 9 {
		t.Fatalf("rows=%d cols=%d, want 4 and 9", cfg.Rows, cfg.Cols)
	}
}

func TestPuzzleOptionsRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Rows, cfg.Cols, cfg.Chance, cfg.Seed = 2, 3, 0.35, -4
	got := lightsout.FromMap(cfg.PuzzleOptions())
	if got != cfg.Board() {
		t.Fatalf("FromMap(PuzzleOptions()) = %+v, want %+v", got, cfg.Board())
	}
}

func TestNewLogger(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "warn"
	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hidden")
	logger.WithField("seed", 5).Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") || !strings.Contains(out, "seed=5") {
		t.Fatalf("unexpected log output %q", out)
	}

	cfg.LogLevel = "loud"
	if _, err := cfg.NewLogger(&buf); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
