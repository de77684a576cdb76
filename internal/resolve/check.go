package resolve

import (
	"context"

	"github.com/AntonioLujanoLuna/DLpyd/internal/meta"
)

// InterpreterReport is the outcome of CheckInterpreter.
type InterpreterReport struct {
	Checked   int // number of pinned releases inspected
	Conflicts []*InterpreterConflictError
}

// OK reports whether no conflict was found.
func (r *InterpreterReport) OK() bool { return len(r.Conflicts) == 0 }

// CheckInterpreter verifies that the descriptor's declared interpreter
// constraint is simultaneously satisfiable with the interpreter
// requirement of every dependency a constraint-only resolve would pin.
//
// Unlike Resolve, which quietly prefers an older release when the
// newest admissible one wants a newer interpreter, this check pins by
// version constraints alone and then reports every pinned release whose
// interpreter requirement cannot overlap the declared one. A clean
// report means the descriptor's interpreter minimum is honest.
func (r *Resolver) CheckInterpreter(ctx context.Context, m *meta.Metadata, groups ...string) (*InterpreterReport, error) {
	clone := *r
	clone.ignoreInterpreter = true

	res, err := clone.Resolve(ctx, m, groups...)
	if err != nil {
		return nil, err
	}

	report := &InterpreterReport{}
	for _, name := range res.Order {
		pin := res.Pins[name]
		report.Checked++
		if !pin.Release.RequiresInterpreter.Intersects(m.RequiresInterpreter) {
			report.Conflicts = append(report.Conflicts, &InterpreterConflictError{
				Name:     pin.Name,
				Version:  pin.Release.Version,
				Requires: pin.Release.RequiresInterpreter,
				Declared: m.RequiresInterpreter,
			})
		}
	}
	return report, nil
}
