package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
)

// pcg stream selector, any odd constant gives a full period
const stream = 0x9e3779b97f4a7c15

// NewSource returns a deterministic generator for the given seed.
func NewSource(seed uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed, stream)) // nolint: gosec
}

// NewSeed reads a random seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSeededSource combines NewSeed and NewSource, returning the seed that was used
// so the outcome can be reproduced later.
func NewSeededSource() (*mrand.Rand, uint64, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, 0, err
	}
	return NewSource(seed), seed, nil
}
