package resolve

import (
	"fmt"
	"strings"

	"github.com/AntonioLujanoLuna/DLpyd/internal/version"
)

// NotFoundError reports a dependency on a distribution the index does
// not know at all.
type NotFoundError struct {
	Name       string // normalized distribution name
	RequiredBy string // who asked for it ("" for the project itself)
}

func (e *NotFoundError) Error() string {
	if e.RequiredBy == "" {
		return fmt.Sprintf("distribution %q not found in index", e.Name)
	}
	return fmt.Sprintf("distribution %q (required by %s) not found in index", e.Name, e.RequiredBy)
}

// UnsatisfiableError reports that the index knows the distribution but
// no release satisfies the accumulated constraints.
type UnsatisfiableError struct {
	Name        string
	Constraints version.Constraints
	Available   []*version.Version // sample of known releases, newest first
}

func (e *UnsatisfiableError) Error() string {
	versions := make([]string, len(e.Available))
	for i, v := range e.Available {
		versions[i] = v.String()
	}
	return fmt.Sprintf("no release of %q satisfies %q (available: %s)",
		e.Name, e.Constraints.String(), strings.Join(versions, ", "))
}

// InterpreterConflictError reports a release that would satisfy the
// version constraints but demands an interpreter the project's own
// constraint can never meet.
type InterpreterConflictError struct {
	Name     string
	Version  *version.Version
	Requires version.Constraints // the release's interpreter constraint
	Declared version.Constraints // the project's interpreter constraint
}

func (e *InterpreterConflictError) Error() string {
	return fmt.Sprintf("%s %s requires interpreter %q, incompatible with declared %q",
		e.Name, e.Version, e.Requires.String(), e.Declared.String())
}

// ConflictError reports two requirement paths that pin the same
// distribution to disjoint ranges.
type ConflictError struct {
	Name     string
	Pinned   *version.Version
	Wanted   version.Constraints
	WantedBy string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s is pinned to %s but %s requires %q",
		e.Name, e.Pinned, e.WantedBy, e.Wanted.String())
}
