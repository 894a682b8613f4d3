package rng

import (
	"math/rand"
)

// Seeded is a deterministic generator for tests and replayable simulations
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a generator seeded with the provided value
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}

// Float64 returns a uniform random number in [0, 1)
func (s *Seeded) Float64() float64 {
	return s.r.Float64()
}
