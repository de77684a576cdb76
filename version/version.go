// Copyright 2025 The DLpyd Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package version provides version identifiers, version constraints and
// dependency specifiers for package metadata.
//
// This is the public facade over internal/version. See the internal
// package for grammar details.
//
// Example:
//
//	v, err := version.Parse("1.26.4")
//	cs, err := version.ParseConstraints(">=1.24,<2.0")
//	if cs.Check(v) {
//	    // satisfied
//	}
package version

import (
	"github.com/AntonioLujanoLuna/DLpyd/internal/version"
)

// Version is a parsed version identifier.
type Version = version.Version

// PreRelease identifies a pre-release segment such as "a1" or "rc3".
type PreRelease = version.PreRelease

// Constraint is a single version constraint, e.g. ">=1.24".
type Constraint = version.Constraint

// Constraints is a conjunction of constraints; the empty set matches
// every version.
type Constraints = version.Constraints

// Operator is a constraint comparison operator.
type Operator = version.Operator

// Specifier is a dependency specifier: name, optional extras and a
// constraint set, e.g. "numpy>=1.24" or "dlpy[dev]>=0.1".
type Specifier = version.Specifier

// Supported constraint operators.
const (
	OpEqual        = version.OpEqual
	OpNotEqual     = version.OpNotEqual
	OpLessEqual    = version.OpLessEqual
	OpGreaterEqual = version.OpGreaterEqual
	OpLess         = version.OpLess
	OpGreater      = version.OpGreater
	OpCompatible   = version.OpCompatible
	OpArbitrary    = version.OpArbitrary
)

// Common errors.
var (
	ErrInvalidVersion    = version.ErrInvalidVersion
	ErrInvalidConstraint = version.ErrInvalidConstraint
	ErrInvalidOperator   = version.ErrInvalidOperator
	ErrInvalidSpecifier  = version.ErrInvalidSpecifier
	ErrInvalidName       = version.ErrInvalidName
)

// Parse parses a version identifier.
func Parse(s string) (*Version, error) {
	return version.Parse(s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Version {
	return version.MustParse(s)
}

// ParseConstraint parses a single constraint such as ">=1.24".
func ParseConstraint(s string) (Constraint, error) {
	return version.ParseConstraint(s)
}

// ParseConstraints parses a comma-separated constraint set.
func ParseConstraints(s string) (Constraints, error) {
	return version.ParseConstraints(s)
}

// ParseSpecifier parses a dependency specifier.
func ParseSpecifier(s string) (*Specifier, error) {
	return version.ParseSpecifier(s)
}

// NormalizeName normalizes a distribution name (casefold, collapse
// separator runs).
func NormalizeName(name string) string {
	return version.NormalizeName(name)
}

// ValidName reports whether name is a well-formed distribution name.
func ValidName(name string) bool {
	return version.ValidName(name)
}
