package lightsout

import (
	"errors"
	"testing"
)

func TestFromMapDefaults(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, want defaults", got)
	}
}

func TestFromMapOverrides(t *testing.T) {
	got := FromMap(map[string]string{
		"rows":   "3",
		"cols":   "4",
		"chance": "0.75",
		"seed":   "-12",
	})
	want := Config{Rows: 3, Cols: 4, Chance: 0.75, Seed: -12}
	if got != want {
		t.Fatalf("FromMap = %+v, want %+v", got, want)
	}
}

func TestFromMapIgnoresMalformedValues(t *testing.T) {
	got := FromMap(map[string]string{
		"rows":   "0",
		"cols":   "wide",
		"chance": "1.5",
		"seed":   "x",
	})
	if got != DefaultConfig() {
		t.Fatalf("FromMap = %+v, want defaults", got)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, p := range []float64{0, 1} {
		cfg := Config{Rows: 1, Cols: 1, Chance: p}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("chance %v should be valid: %v", p, err)
		}
	}
	if err := (Config{Rows: 1, Cols: 0}).Validate(); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("error = %v, want ErrInvalidDimension", err)
	}
	if err := (Config{Rows: 1, Cols: 1, Chance: 1.0001}).Validate(); !errors.Is(err, ErrInvalidProbability) {
		t.Fatalf("error = %v, want ErrInvalidProbability", err)
	}
}
