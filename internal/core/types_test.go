package core

import (
	"slices"
	"testing"
)

func TestRegisterIgnoresInvalidEntries(t *testing.T) {
	before := len(Puzzles())
	Register("", func(map[string]string) (Puzzle, error) { return nil, nil })
	Register("nil-factory", nil)
	if got := len(Puzzles()); got != before {
		t.Fatalf("registry size = %d, want %d", got, before)
	}
}

func TestPuzzleNamesSorted(t *testing.T) {
	f := func(map[string]string) (Puzzle, error) { return nil, nil }
	Register("zz-test", f)
	Register("aa-test", f)
	t.Cleanup(func() {
		delete(puzzles, "zz-test")
		delete(puzzles, "aa-test")
	})

	names := PuzzleNames()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, "aa-test") || !slices.Contains(names, "zz-test") {
		t.Fatalf("registered names missing from %v", names)
	}
}
