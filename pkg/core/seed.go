package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a non-zero random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		seed := int64(binary.LittleEndian.Uint64(b[:]))
		if seed != 0 {
			return seed, nil
		}
	}
}
