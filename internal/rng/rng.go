// Package rng provides the injectable random source threaded through every
// simulation call that consumes entropy. A turn replayed against the same
// source yields bit-for-bit identical output.
package rng

import "math/rand"

// Source yields floats in [0, 1). Implementations need not be safe for
// concurrent use; each simulation run owns its source.
type Source interface {
	Float() float64
}

// Seeded is a deterministic source backed by math/rand with a fixed seed.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded creates a source that replays the same sequence for the same
// seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

func (s *Seeded) Float() float64 { return s.r.Float64() }

// Scripted replays a recorded draw sequence, wrapping around when exhausted.
// Tests use it to force exact roll outcomes.
type Scripted struct {
	draws []float64
	next  int
}

// NewScripted creates a source that returns the given draws in order. An
// empty sequence always yields 0.
func NewScripted(draws ...float64) *Scripted {
	return &Scripted{draws: draws}
}

func (s *Scripted) Float() float64 {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

// Drawn reports how many draws have been consumed.
func (s *Scripted) Drawn() int { return s.next }

// WeightedIndex performs one weighted draw over the given weights using a
// single Float() call. Returns -1 when every weight is zero or the list is
// empty. Selection walks the weights in order, so equal sequences and equal
// draws always pick the same index.
func WeightedIndex(src Source, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	target := src.Float() * total
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if target < acc {
			return i
		}
	}
	// Float rounding can leave target == total; settle on the last positive.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}
