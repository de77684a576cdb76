package resolve

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/AntonioLujanoLuna/DLpyd/internal/log"
	"github.com/AntonioLujanoLuna/DLpyd/internal/meta"
	"github.com/AntonioLujanoLuna/DLpyd/internal/version"
)

const defaultParallelism = 4

// Resolver pins descriptor dependencies against one index snapshot.
type Resolver struct {
	index       *Index
	parallelism int
	logger      zerolog.Logger

	// ignoreInterpreter disables interpreter filtering during release
	// selection. Used by CheckInterpreter to see the pins a
	// constraint-only resolve would produce.
	ignoreInterpreter bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithParallelism bounds the number of first-level dependencies checked
// concurrently. Values below 1 are ignored.
func WithParallelism(n int) Option {
	return func(r *Resolver) {
		if n >= 1 {
			r.parallelism = n
		}
	}
}

// NewResolver creates a resolver over the given index.
func NewResolver(index *Index, opts ...Option) *Resolver {
	r := &Resolver{
		index:       index,
		parallelism: defaultParallelism,
		logger:      log.WithComponent("resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Pin is one resolved dependency.
type Pin struct {
	Name       string // normalized distribution name
	Release    *Release
	RequiredBy string // "" for direct dependencies of the project
}

// Resolution is the outcome of a successful resolve: every reachable
// dependency pinned to exactly one release.
type Resolution struct {
	Pins  map[string]*Pin
	Order []string // pin order, direct dependencies first
}

// Version returns the pinned version of a distribution, or nil if the
// resolution does not contain it.
func (r *Resolution) Version(name string) *version.Version {
	if pin, ok := r.Pins[version.NormalizeName(name)]; ok {
		return pin.Release.Version
	}
	return nil
}

// Resolve walks the descriptor's runtime dependencies, plus the named
// optional groups, and pins each reachable distribution to the highest
// release admitted by the accumulated constraints and the project's
// interpreter constraint.
//
// Direct dependencies are checked concurrently; the transitive walk is
// sequential and deterministic (breadth-first, names sorted per wave).
// Pre-release versions are only admitted where a constraint explicitly
// names one. Specifiers carrying an environment marker are skipped,
// since no target environment is available to evaluate them against.
func (r *Resolver) Resolve(ctx context.Context, m *meta.Metadata, groups ...string) (*Resolution, error) {
	for _, g := range groups {
		if _, ok := m.Group(g); !ok {
			return nil, fmt.Errorf("unknown optional dependency group %q", g)
		}
	}

	roots := m.AllDependencies(groups...)
	declared := m.RequiresInterpreter

	// First level: independent lookups, fanned out.
	pins := make([]*Pin, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i, spec := range roots {
		i, spec := i, spec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if spec.Marker != "" {
				r.logger.Debug().Str("specifier", spec.Raw()).Msg("skipping marker-guarded dependency")
				return nil
			}
			rel, err := r.pickRelease(spec.Name, spec.Constraints, declared)
			if err != nil {
				return err
			}
			pins[i] = &Pin{Name: spec.Name, Release: rel}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Resolution{Pins: make(map[string]*Pin, len(roots))}
	var queue []*Pin
	for i, pin := range pins {
		if pin == nil { // marker-guarded
			continue
		}
		if prev, ok := res.Pins[pin.Name]; ok {
			// Same distribution requested twice at the top level; the
			// earlier pin must satisfy the later constraints too.
			if !roots[i].Constraints.Check(prev.Release.Version) {
				return nil, &ConflictError{
					Name:     pin.Name,
					Pinned:   prev.Release.Version,
					Wanted:   roots[i].Constraints,
					WantedBy: "project",
				}
			}
			continue
		}
		res.Pins[pin.Name] = pin
		res.Order = append(res.Order, pin.Name)
		queue = append(queue, pin)
	}

	// Transitive closure, breadth first.
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		wave := queue
		queue = nil
		sort.Slice(wave, func(i, j int) bool { return wave[i].Name < wave[j].Name })

		for _, parent := range wave {
			for _, spec := range parent.Release.Dependencies {
				if spec.Marker != "" {
					r.logger.Debug().Str("specifier", spec.Raw()).Msg("skipping marker-guarded dependency")
					continue
				}

				if prev, ok := res.Pins[spec.Name]; ok {
					if !spec.Constraints.Check(prev.Release.Version) {
						return nil, &ConflictError{
							Name:     spec.Name,
							Pinned:   prev.Release.Version,
							Wanted:   spec.Constraints,
							WantedBy: parent.Name,
						}
					}
					continue
				}

				rel, err := r.pickRelease(spec.Name, spec.Constraints, declared)
				if err != nil {
					if nf, ok := err.(*NotFoundError); ok {
						nf.RequiredBy = parent.Name
					}
					return nil, err
				}

				pin := &Pin{Name: spec.Name, Release: rel, RequiredBy: parent.Name}
				res.Pins[spec.Name] = pin
				res.Order = append(res.Order, spec.Name)
				queue = append(queue, pin)
			}
		}
	}

	r.logger.Debug().Int("pins", len(res.Pins)).Msg("resolution complete")
	return res, nil
}

// pickRelease selects the highest release of name admitted by the
// constraint set and compatible with the declared interpreter
// constraint.
func (r *Resolver) pickRelease(name string, cs version.Constraints, declared version.Constraints) (*Release, error) {
	rels, ok := r.index.Releases(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	allowPre := cs.AllowsPrerelease()

	var candidates []*Release
	for _, rel := range rels { // newest first
		if !allowPre && rel.Version.IsPrerelease() {
			continue
		}
		if cs.Check(rel.Version) {
			candidates = append(candidates, rel)
		}
	}

	if len(candidates) == 0 {
		const sample = 5
		available := make([]*version.Version, 0, sample)
		for _, rel := range rels {
			if len(available) == sample {
				break
			}
			available = append(available, rel.Version)
		}
		return nil, &UnsatisfiableError{Name: name, Constraints: cs, Available: available}
	}

	if r.ignoreInterpreter {
		return candidates[0], nil
	}

	for _, rel := range candidates {
		if rel.RequiresInterpreter.Intersects(declared) {
			return rel, nil
		}
	}

	best := candidates[0]
	return nil, &InterpreterConflictError{
		Name:     name,
		Version:  best.Version,
		Requires: best.RequiresInterpreter,
		Declared: declared,
	}
}
