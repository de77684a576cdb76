package data

import (
	"errors"
	"fmt"
	"math/rand"
)

// Common errors.
var (
	ErrNegativeLength  = errors.New("data source length cannot be negative")
	ErrInvalidBatch    = errors.New("batch size must be positive")
	ErrIndexOutOfRange = errors.New("subset index out of range")
)

// Sampler produces a stream of indices into a sized data source.
type Sampler interface {
	// Len returns the number of indices the sampler yields.
	Len() int

	// Indices returns the full index stream. The returned slice is
	// freshly allocated on every call; for Random samplers each call
	// yields the next permutation.
	Indices() []int
}

// Sequential yields 0..n-1 in order.
type Sequential struct {
	n int
}

// NewSequential creates a sequential sampler over n elements.
func NewSequential(n int) (*Sequential, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	return &Sequential{n: n}, nil
}

func (s *Sequential) Len() int { return s.n }

func (s *Sequential) Indices() []int {
	out := make([]int, s.n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Random yields a permutation of 0..n-1 without replacement. The
// permutation is driven by a private seeded source, so two samplers
// constructed with the same seed replay the same epoch order.
type Random struct {
	n   int
	rng *rand.Rand
}

// NewRandom creates a random sampler over n elements with the given
// seed.
func NewRandom(n int, seed int64) (*Random, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	return &Random{n: n, rng: rand.New(rand.NewSource(seed))}, nil //nolint:gosec // reproducible shuffling, not cryptography
}

func (s *Random) Len() int { return s.n }

func (s *Random) Indices() []int {
	return s.rng.Perm(s.n)
}

// Subset yields a random permutation of a fixed index subset, e.g. a
// train/validation split.
type Subset struct {
	indices []int
	rng     *rand.Rand
}

// NewSubset creates a sampler over the given indices of a data source
// of length n. Every index must lie in [0, n).
func NewSubset(indices []int, n int, seed int64) (*Subset, error) {
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, n)
		}
	}
	owned := make([]int, len(indices))
	copy(owned, indices)
	return &Subset{indices: owned, rng: rand.New(rand.NewSource(seed))}, nil //nolint:gosec // reproducible shuffling, not cryptography
}

func (s *Subset) Len() int { return len(s.indices) }

func (s *Subset) Indices() []int {
	out := make([]int, len(s.indices))
	for i, j := range s.rng.Perm(len(s.indices)) {
		out[i] = s.indices[j]
	}
	return out
}

// Batch groups another sampler's stream into fixed-size index batches.
type Batch struct {
	sampler  Sampler
	size     int
	dropLast bool
}

// NewBatch wraps a sampler into batches of the given size. With
// dropLast, a trailing partial batch is discarded.
func NewBatch(sampler Sampler, size int, dropLast bool) (*Batch, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatch, size)
	}
	return &Batch{sampler: sampler, size: size, dropLast: dropLast}, nil
}

// Len returns the number of batches.
func (b *Batch) Len() int {
	n := b.sampler.Len()
	if b.dropLast {
		return n / b.size
	}
	return (n + b.size - 1) / b.size
}

// Batches returns one pass over the underlying sampler, grouped.
func (b *Batch) Batches() [][]int {
	indices := b.sampler.Indices()
	var out [][]int
	for start := 0; start < len(indices); start += b.size {
		end := start + b.size
		if end > len(indices) {
			if b.dropLast {
				break
			}
			end = len(indices)
		}
		out = append(out, indices[start:end])
	}
	return out
}
