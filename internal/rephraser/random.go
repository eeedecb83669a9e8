package rephraser

import (
	"math/rand/v2"
	"sync"
)

// Source supplies the random decisions made while rephrasing
type Source interface {
	// Float64 returns a uniform value in [0.0, 1.0)
	Float64() float64
	// IntN returns a uniform value in [0, n)
	IntN(n int) int
}

// globalSource draws from the process-wide generator, which is seeded from
// system entropy and safe for concurrent use
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// lockedSource serializes access to a seeded generator
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededSource returns a reproducible Source. It is safe for concurrent
// use, though the sequence seen by each caller then depends on scheduling.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
