package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// RangeWithin returns a random inclusive range with first <= from <= to <= last.
func (r *RNG) RangeWithin(first, last int) (from, to int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := last - first + 1
	a := first + r.rand.Intn(span)
	b := first + r.rand.Intn(span)
	if a > b {
		a, b = b, a
	}
	return a, b
}

// HalfValues returns n values of the form k+0.5 with k in [-limit, limit),
// so every element is an exact rounding tie.
func (r *RNG) HalfValues(n, limit int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(r.rand.Intn(2*limit)-limit) + 0.5
	}
	return out
}
