package meta

import (
	"github.com/AntonioLujanoLuna/DLpyd/internal/version"
)

// Author identifies a package author or maintainer.
type Author struct {
	Name  string `toml:"name"`
	Email string `toml:"email,omitempty"`
}

// Metadata is a parsed package-metadata descriptor.
//
// All version-shaped fields are parsed eagerly by Load; a Metadata value
// therefore never carries an unparseable version or specifier.
type Metadata struct {
	// Name is the distribution name as written in the descriptor.
	Name string

	// Version is the distribution version.
	Version *version.Version

	// Summary is the one-line human readable description.
	Summary string

	Authors []Author

	// License is the license identifier (e.g. "MIT").
	License string

	// LicenseFile is the path of the license file, relative to the
	// descriptor.
	LicenseFile string

	// Classifiers are trove-style classifier tags, e.g.
	// "Intended Audience :: Education".
	Classifiers []string

	// RequiresInterpreter is the interpreter version constraint
	// (requires-python in the descriptor).
	RequiresInterpreter version.Constraints

	// Dependencies are the mandatory runtime dependencies.
	Dependencies []*version.Specifier

	// OptionalDependencies maps a group name (e.g. "dev") to the
	// dependencies installed when the group's extra is requested.
	OptionalDependencies map[string][]*version.Specifier
}

// NormalizedName returns the normalized distribution name.
func (m *Metadata) NormalizedName() string {
	return version.NormalizeName(m.Name)
}

// AllDependencies returns the runtime dependencies plus the listed
// optional groups, in declaration order. Unknown group names are
// ignored; callers that care use Group.
func (m *Metadata) AllDependencies(groups ...string) []*version.Specifier {
	out := make([]*version.Specifier, 0, len(m.Dependencies))
	out = append(out, m.Dependencies...)
	for _, g := range groups {
		out = append(out, m.OptionalDependencies[version.NormalizeName(g)]...)
	}
	return out
}

// Group returns the dependencies of one optional group and whether the
// group exists. The name is normalized before lookup.
func (m *Metadata) Group(name string) ([]*version.Specifier, bool) {
	deps, ok := m.OptionalDependencies[version.NormalizeName(name)]
	return deps, ok
}
