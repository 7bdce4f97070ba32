package core

import "math/rand"

// Rand is the randomness source games draw from.
// Tests inject scripted implementations to assert exact sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded math/rand source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Between returns a value in [min, min+span).
func Between(r Rand, min, span float64) float64 {
	return min + r.Float64()*span
}

// Spread returns a value in [-span/2, span/2).
func Spread(r Rand, span float64) float64 {
	return (r.Float64() - 0.5) * span
}

// Pick returns a random element of items. items must not be empty.
func Pick[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}
