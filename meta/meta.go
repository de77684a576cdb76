// Copyright 2025 The DLpyd Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package meta provides loading and validation of package-metadata
// descriptors.
//
// This is the public facade over internal/meta.
//
// Example:
//
//	m, err := meta.Load("dlpyd.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := meta.Validate(m); err != nil {
//	    log.Fatal(err)
//	}
package meta

import (
	"io"

	"github.com/AntonioLujanoLuna/DLpyd/internal/meta"
)

// Metadata is a parsed package-metadata descriptor.
type Metadata = meta.Metadata

// Author identifies a package author or maintainer.
type Author = meta.Author

// FieldError reports a descriptor field that failed to parse.
type FieldError = meta.FieldError

// ValidationError reports a single semantic rule violation.
type ValidationError = meta.ValidationError

// ValidationErrors collects every rule violation found in one pass.
type ValidationErrors = meta.ValidationErrors

// Common errors.
var (
	ErrMissingProject = meta.ErrMissingProject
	ErrUnknownKeys    = meta.ErrUnknownKeys
)

// Load reads and parses a descriptor file.
func Load(path string) (*Metadata, error) {
	return meta.Load(path)
}

// Read parses a descriptor from a reader.
func Read(r io.Reader) (*Metadata, error) {
	return meta.Read(r)
}

// Validate checks the semantic rules a well-formed descriptor must
// satisfy.
func Validate(m *Metadata) error {
	return meta.Validate(m)
}
