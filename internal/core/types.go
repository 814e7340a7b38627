package core

import "sort"

// Size describes the dimensions of a puzzle grid.
type Size struct {
	W int
	H int
}

// Puzzle defines the contract a front end drives. Coordinates are (y, x):
// row first, matching the board's [y][x] layout.
type Puzzle interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Seed() int64
	Flip(y, x int) bool
	Cells() []bool
	Solved() bool
}

// Factory constructs a Puzzle using an optional configuration map.
type Factory func(cfg map[string]string) (Puzzle, error)

var puzzles = map[string]Factory{}

// Register adds a puzzle factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	puzzles[name] = f
}

// Puzzles exposes the registry of available puzzle factories.
func Puzzles() map[string]Factory {
	return puzzles
}

// PuzzleNames returns the registered puzzle names in sorted order.
func PuzzleNames() []string {
	names := make([]string, 0, len(puzzles))
	for name := range puzzles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
