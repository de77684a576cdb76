package meta

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrMissingProject = errors.New("descriptor has no [project] table")
	ErrUnknownKeys    = errors.New("descriptor contains unknown keys")
)

// FieldError reports a descriptor field that failed to parse.
type FieldError struct {
	Field string // dotted field path, e.g. "project.dependencies[0]"
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ValidationError reports a single semantic rule violation.
type ValidationError struct {
	Rule    string // short rule identifier, e.g. "duplicate_dependency"
	Field   string
	Details string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Details, e.Rule)
}

// ValidationErrors collects every rule violation found in one pass.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d validation error(s): %s", len(es), strings.Join(msgs, "; "))
}
