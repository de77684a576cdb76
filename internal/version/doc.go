// Package version implements version identifiers, version constraints and
// dependency specifiers for DLpyd package metadata.
//
// The grammar follows the scheme used by Python packaging metadata:
//
//	Version:    [epoch!]release[pre][.post][.dev][+local]
//	Constraint: one of ==, !=, <=, >=, <, >, ~=, === followed by a version
//	Specifier:  name[extras] constraints [; marker]
//
// Versions are fully ordered: developmental releases sort before
// pre-releases, pre-releases before final releases, and post-releases
// after them. Constraint sets are comma-separated conjunctions.
//
// Example:
//
//	v, err := version.Parse("1.26.4")
//	c, err := version.ParseConstraints(">=1.24,<2.0")
//	if c.Check(v) {
//	    // 1.26.4 satisfies >=1.24,<2.0
//	}
//
//	spec, err := version.ParseSpecifier("numpy>=1.24")
//	fmt.Println(spec.Name) // "numpy"
package version
