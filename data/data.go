// Copyright 2025 The DLpyd Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package data provides index samplers for iterating over datasets.
//
// This is the public facade over internal/data.
//
// Example:
//
//	s, err := data.NewRandom(len(dataset), 42)
//	b, err := data.NewBatch(s, 32, true)
//	for _, batch := range b.Batches() {
//	    // batch is a []int of dataset indices
//	}
package data

import (
	"github.com/AntonioLujanoLuna/DLpyd/internal/data"
)

// Sampler produces a stream of indices into a sized data source.
type Sampler = data.Sampler

// Sequential yields 0..n-1 in order.
type Sequential = data.Sequential

// Random yields a seeded permutation without replacement.
type Random = data.Random

// Subset yields a random permutation of a fixed index subset.
type Subset = data.Subset

// Batch groups another sampler's stream into fixed-size batches.
type Batch = data.Batch

// Common errors.
var (
	ErrNegativeLength  = data.ErrNegativeLength
	ErrInvalidBatch    = data.ErrInvalidBatch
	ErrIndexOutOfRange = data.ErrIndexOutOfRange
)

// NewSequential creates a sequential sampler over n elements.
func NewSequential(n int) (*Sequential, error) {
	return data.NewSequential(n)
}

// NewRandom creates a seeded random sampler over n elements.
func NewRandom(n int, seed int64) (*Random, error) {
	return data.NewRandom(n, seed)
}

// NewSubset creates a sampler over the given indices of a data source
// of length n.
func NewSubset(indices []int, n int, seed int64) (*Subset, error) {
	return data.NewSubset(indices, n, seed)
}

// NewBatch wraps a sampler into batches of the given size.
func NewBatch(sampler Sampler, size int, dropLast bool) (*Batch, error) {
	return data.NewBatch(sampler, size, dropLast)
}
