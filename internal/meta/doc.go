// Package meta implements the DLpyd package-metadata descriptor.
//
// A descriptor is a TOML file with a [project] table carrying the
// distribution name, version, author and license information, the
// interpreter constraint, the runtime dependency list and optional
// dependency groups:
//
//	[project]
//	name = "DLpy"
//	version = "0.1.0"
//	description = "Educational deep learning library"
//	license = "MIT"
//	license-file = "LICENSE"
//	requires-python = ">=3.10"
//	dependencies = ["numpy>=1.24"]
//
//	[project.optional-dependencies]
//	dev = ["pytest>=7.4", "mypy>=1.8"]
//
// Loading is strict: unknown keys are rejected, and every version and
// dependency specifier must parse. Semantic rules (duplicate
// dependencies, malformed classifiers, contradictory interpreter
// constraints) are enforced by Validate.
package meta
