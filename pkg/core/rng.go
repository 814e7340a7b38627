package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillChance sets each entry of buf independently to (draw < p). Entries are
// drawn in slice order so a seeded source always yields the same buffer.
func FillChance(r *rand.Rand, buf []bool, p float64) {
	for i := range buf {
		buf[i] = r.Float64() < p
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
