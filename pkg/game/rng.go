package game

import "math/rand"

// RNG is the session's source of randomness. Seeded construction makes
// combat and skill-check outcomes reproducible in tests.
type RNG struct {
	src *rand.Rand
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Roll returns a random integer in [1, sides].
func (r *RNG) Roll(sides int) int {
	return r.src.Intn(sides) + 1
}

// Chance reports whether a draw in [0,1) landed under p.
func (r *RNG) Chance(p float64) bool {
	return r.src.Float64() < p
}
