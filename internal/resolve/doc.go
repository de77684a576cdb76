// Package resolve checks package metadata against an index snapshot.
//
// An Index is a frozen view of an available-package universe: every
// distribution with its published releases, each release carrying its
// own interpreter constraint and dependency specifiers. Snapshots are
// plain YAML files, so test and classroom universes are cheap to write
// by hand:
//
//	packages:
//	  numpy:
//	    - version: "1.24.0"
//	      requires-python: ">=3.8"
//	    - version: "1.26.4"
//	      requires-python: ">=3.9"
//
// The Resolver walks a descriptor's dependencies transitively and pins
// each one to the highest admissible release. Failures are typed per
// cause: unknown distribution, unsatisfiable constraints, interpreter
// conflict, or conflicting requirement paths.
package resolve
