// Package random provides the random source used for starter item choices.
package random

import "math/rand/v2"

// Source draws uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Default returns the process-wide source. Results are not reproducible.
func Default() Source { return globalSource{} }

// NewSeeded returns a reproducible source (PCG), e.g. for tooling.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, 0))
}

// Range returns from + src.IntN(count).
func Range(src Source, from, count int) int {
	return from + src.IntN(count)
}
