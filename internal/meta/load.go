package meta

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/AntonioLujanoLuna/DLpyd/internal/version"
)

// rawDescriptor mirrors the TOML layout before any field is parsed.
type rawDescriptor struct {
	Project *rawProject `toml:"project"`
}

type rawProject struct {
	Name           string              `toml:"name"`
	Version        string              `toml:"version"`
	Description    string              `toml:"description"`
	Authors        []Author            `toml:"authors"`
	License        string              `toml:"license"`
	LicenseFile    string              `toml:"license-file"`
	Classifiers    []string            `toml:"classifiers"`
	RequiresPython string              `toml:"requires-python"`
	Dependencies   []string            `toml:"dependencies"`
	OptionalDeps   map[string][]string `toml:"optional-dependencies"`
}

// Load reads and parses a descriptor file.
//
// Loading is strict in two ways: keys the descriptor schema does not
// know are an error (wrapping ErrUnknownKeys), and every version-shaped
// field must parse (reported as *FieldError).
func Load(path string) (*Metadata, error) {
	f, err := os.Open(path) //nolint:gosec // descriptor path is user input by design
	if err != nil {
		return nil, fmt.Errorf("failed to open descriptor: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a descriptor from a reader. See Load.
func Read(r io.Reader) (*Metadata, error) {
	var raw rawDescriptor
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode descriptor: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}

	if raw.Project == nil {
		return nil, ErrMissingProject
	}

	return raw.Project.parse()
}

// parse converts the raw descriptor into a Metadata, parsing every
// version-shaped field.
func (p *rawProject) parse() (*Metadata, error) {
	m := &Metadata{
		Name:        p.Name,
		Summary:     p.Description,
		Authors:     p.Authors,
		License:     p.License,
		LicenseFile: p.LicenseFile,
		Classifiers: p.Classifiers,
	}

	if p.Version != "" {
		v, err := version.Parse(p.Version)
		if err != nil {
			return nil, &FieldError{Field: "project.version", Value: p.Version, Err: err}
		}
		m.Version = v
	}

	if p.RequiresPython != "" {
		cs, err := version.ParseConstraints(p.RequiresPython)
		if err != nil {
			return nil, &FieldError{Field: "project.requires-python", Value: p.RequiresPython, Err: err}
		}
		m.RequiresInterpreter = cs
	}

	for i, dep := range p.Dependencies {
		spec, err := version.ParseSpecifier(dep)
		if err != nil {
			return nil, &FieldError{
				Field: fmt.Sprintf("project.dependencies[%d]", i),
				Value: dep,
				Err:   err,
			}
		}
		m.Dependencies = append(m.Dependencies, spec)
	}

	if len(p.OptionalDeps) > 0 {
		m.OptionalDependencies = make(map[string][]*version.Specifier, len(p.OptionalDeps))
		for group, deps := range p.OptionalDeps {
			key := version.NormalizeName(group)
			if _, ok := m.OptionalDependencies[key]; ok {
				return nil, &FieldError{
					Field: "project.optional-dependencies." + group,
					Value: group,
					Err:   fmt.Errorf("group name collides with another group after normalization (%q)", key),
				}
			}
			specs := make([]*version.Specifier, 0, len(deps))
			for i, dep := range deps {
				spec, err := version.ParseSpecifier(dep)
				if err != nil {
					return nil, &FieldError{
						Field: fmt.Sprintf("project.optional-dependencies.%s[%d]", group, i),
						Value: dep,
						Err:   err,
					}
				}
				specs = append(specs, spec)
			}
			m.OptionalDependencies[key] = specs
		}
	}

	return m, nil
}
