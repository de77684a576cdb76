// Copyright 2025 The DLpyd Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package resolve provides dependency resolution against index
// snapshots.
//
// This is the public facade over internal/resolve.
//
// Example:
//
//	idx, err := resolve.LoadIndex("index.yaml")
//	r := resolve.NewResolver(idx)
//	res, err := r.Resolve(ctx, m, "dev")
//	for _, name := range res.Order {
//	    fmt.Printf("%s==%s\n", name, res.Pins[name].Release.Version)
//	}
package resolve

import (
	"io"

	"github.com/AntonioLujanoLuna/DLpyd/internal/resolve"
)

// Index is an immutable snapshot of an available-package universe.
type Index = resolve.Index

// Release is one published version of a distribution.
type Release = resolve.Release

// Resolver pins descriptor dependencies against one index snapshot.
type Resolver = resolve.Resolver

// Option configures a Resolver.
type Option = resolve.Option

// Pin is one resolved dependency.
type Pin = resolve.Pin

// Resolution is the outcome of a successful resolve.
type Resolution = resolve.Resolution

// InterpreterReport is the outcome of Resolver.CheckInterpreter.
type InterpreterReport = resolve.InterpreterReport

// Typed resolution failures.
type (
	// NotFoundError reports a dependency the index does not know.
	NotFoundError = resolve.NotFoundError
	// UnsatisfiableError reports that no release matches the
	// constraints.
	UnsatisfiableError = resolve.UnsatisfiableError
	// InterpreterConflictError reports a release demanding an
	// incompatible interpreter.
	InterpreterConflictError = resolve.InterpreterConflictError
	// ConflictError reports requirement paths pinning disjoint ranges.
	ConflictError = resolve.ConflictError
)

// NewIndex builds an index from a release listing.
func NewIndex(releases map[string][]*Release) *Index {
	return resolve.NewIndex(releases)
}

// LoadIndex reads an index snapshot from a YAML file.
func LoadIndex(path string) (*Index, error) {
	return resolve.LoadIndex(path)
}

// ReadIndex parses an index snapshot from a reader.
func ReadIndex(r io.Reader) (*Index, error) {
	return resolve.ReadIndex(r)
}

// NewResolver creates a resolver over the given index.
func NewResolver(index *Index, opts ...Option) *Resolver {
	return resolve.NewResolver(index, opts...)
}

// WithParallelism bounds concurrent first-level dependency checks.
func WithParallelism(n int) Option {
	return resolve.WithParallelism(n)
}
