package resolve

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/AntonioLujanoLuna/DLpyd/internal/version"
)

// Release is one published version of a distribution.
type Release struct {
	Version *version.Version

	// RequiresInterpreter is the release's own interpreter constraint.
	// Empty means any interpreter.
	RequiresInterpreter version.Constraints

	// Dependencies are the release's runtime dependency specifiers.
	Dependencies []*version.Specifier
}

// Index is an immutable snapshot of an available-package universe.
// Releases are kept sorted newest first. An Index is safe for
// concurrent use once built.
type Index struct {
	releases map[string][]*Release
}

// NewIndex builds an index from a release listing. Names are
// normalized and releases sorted newest first.
func NewIndex(releases map[string][]*Release) *Index {
	idx := &Index{releases: make(map[string][]*Release, len(releases))}
	for name, rels := range releases {
		sorted := make([]*Release, len(rels))
		copy(sorted, rels)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Version.Compare(sorted[j].Version) > 0
		})
		idx.releases[version.NormalizeName(name)] = sorted
	}
	return idx
}

// Releases returns the known releases of a distribution, newest first,
// and whether the distribution exists at all.
func (idx *Index) Releases(name string) ([]*Release, bool) {
	rels, ok := idx.releases[version.NormalizeName(name)]
	return rels, ok
}

// Len returns the number of distributions in the index.
func (idx *Index) Len() int { return len(idx.releases) }

// rawIndex mirrors the YAML snapshot layout.
type rawIndex struct {
	Packages map[string][]rawRelease `yaml:"packages"`
}

type rawRelease struct {
	Version        string   `yaml:"version"`
	RequiresPython string   `yaml:"requires-python"`
	Dependencies   []string `yaml:"dependencies"`
}

// LoadIndex reads an index snapshot from a YAML file.
func LoadIndex(path string) (*Index, error) {
	f, err := os.Open(path) //nolint:gosec // snapshot path is user input by design
	if err != nil {
		return nil, fmt.Errorf("failed to open index snapshot: %w", err)
	}
	defer f.Close()
	return ReadIndex(f)
}

// ReadIndex parses an index snapshot. Decoding is strict: unknown YAML
// keys are an error, as are unparseable versions or specifiers.
func ReadIndex(r io.Reader) (*Index, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw rawIndex
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode index snapshot: %w", err)
	}

	releases := make(map[string][]*Release, len(raw.Packages))
	for name, rawRels := range raw.Packages {
		for _, rr := range rawRels {
			rel, err := rr.parse()
			if err != nil {
				return nil, fmt.Errorf("package %q: %w", name, err)
			}
			releases[name] = append(releases[name], rel)
		}
	}
	return NewIndex(releases), nil
}

func (rr rawRelease) parse() (*Release, error) {
	v, err := version.Parse(rr.Version)
	if err != nil {
		return nil, fmt.Errorf("release version: %w", err)
	}

	rel := &Release{Version: v}

	if rr.RequiresPython != "" {
		cs, err := version.ParseConstraints(rr.RequiresPython)
		if err != nil {
			return nil, fmt.Errorf("release %s requires-python: %w", v, err)
		}
		rel.RequiresInterpreter = cs
	}

	for _, dep := range rr.Dependencies {
		spec, err := version.ParseSpecifier(dep)
		if err != nil {
			return nil, fmt.Errorf("release %s dependency: %w", v, err)
		}
		rel.Dependencies = append(rel.Dependencies, spec)
	}
	return rel, nil
}
