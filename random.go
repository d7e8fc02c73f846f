package maze

import (
	"time"

	"golang.org/x/exp/rand"
)

// Provides all of the randomness used when generating a maze. Tests may supply
// a fixed sequence; everything else should use NewRandomSource.
type RandomSource interface {
	// Returns a uniform integer in [0, n). n must be positive.
	Intn(n int) int
	// Returns a uniform float in [0, 1).
	Float64() float64
}

// Returns a RandomSource backed by a PCG generator. If the given seed is not
// positive, a new seed will be selected based on the current time in
// nanoseconds. Callers that need to report the seed should resolve it with
// SeedOf first.
func NewRandomSource(seed int64) RandomSource {
	seed = SeedOf(seed)
	return rand.New(rand.NewSource(uint64(seed)))
}

// Returns the seed NewRandomSource would use for the given value.
func SeedOf(seed int64) int64 {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return seed
}

// Returns true with probability 1/2.
func coinFlip(rng RandomSource) bool {
	return rng.Intn(2) == 0
}
