// Package randx holds the sampling helpers used by the question generators.
// Every helper takes an explicit Source so that tests can seed generation.
package randx

import (
	"math/rand/v2"
	"time"
)

// MaxResamples bounds NoTrailingZero's rejection loop.
const MaxResamples = 100

// Source is the randomness capability threaded through generation.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform int in [0, n). Panics if n <= 0.
	IntN(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// New returns a deterministic source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeSeeded returns a source seeded from the wall clock.
func NewTimeSeeded() *rand.Rand {
	return New(uint64(time.Now().UnixNano()))
}

// Int returns a uniform integer in [min, max] inclusive.
func Int(src Source, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + src.IntN(max-min+1)
}

// HasTrailingZero reports whether n's decimal form ends in 0 and has more
// than one digit (10, 20, 120 but not 0).
func HasTrailingZero(n int) bool {
	if n < 0 {
		n = -n
	}
	return n >= 10 && n%10 == 0
}

// NoTrailingZero samples Int(min, max) until the value has no trailing zero.
// After MaxResamples tries the last sample is returned as-is.
func NoTrailingZero(src Source, min, max int) int {
	n := Int(src, min, max)
	for i := 1; i < MaxResamples && HasTrailingZero(n); i++ {
		n = Int(src, min, max)
	}
	return n
}

// Shuffle returns a Fisher–Yates shuffled copy of s. The input is not mutated.
func Shuffle[T any](src Source, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Pick returns a uniformly chosen element of s. s must not be empty.
func Pick[T any](src Source, s []T) T {
	return s[src.IntN(len(s))]
}

// Coin returns true with probability 1/2.
func Coin(src Source) bool {
	return src.Float64() < 0.5
}
