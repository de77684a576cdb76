package meta

import (
	"fmt"
	"strings"

	"github.com/AntonioLujanoLuna/DLpyd/internal/version"
)

// Validate checks the semantic rules a well-formed descriptor must
// satisfy and returns every violation at once as ValidationErrors.
//
// Rules:
//   - the name is present and a well-formed distribution name
//   - the version is present
//   - each classifier is a " :: "-separated list of non-empty segments
//   - the interpreter constraint is not self-contradictory
//   - no dependency name appears twice in the runtime list or twice
//     within one optional group (after normalization)
//   - no specifier set is self-contradictory
//   - optional group names are well-formed
func Validate(m *Metadata) error {
	var errs ValidationErrors

	add := func(rule, field, details string) {
		errs = append(errs, &ValidationError{Rule: rule, Field: field, Details: details})
	}

	switch {
	case m.Name == "":
		add("missing_name", "project.name", "name is required")
	case !version.ValidName(m.Name):
		add("invalid_name", "project.name", fmt.Sprintf("%q is not a valid distribution name", m.Name))
	}

	if m.Version == nil {
		add("missing_version", "project.version", "version is required")
	}

	for i, c := range m.Classifiers {
		if !validClassifier(c) {
			add("invalid_classifier", fmt.Sprintf("project.classifiers[%d]", i),
				fmt.Sprintf("%q is not a ' :: '-separated classifier", c))
		}
	}

	if m.RequiresInterpreter.Contradictory() {
		add("contradictory_interpreter", "project.requires-python",
			fmt.Sprintf("%q admits no interpreter version", m.RequiresInterpreter.String()))
	}

	validateGroup(&errs, "project.dependencies", m.Dependencies)
	for group, deps := range m.OptionalDependencies {
		if !version.ValidName(group) {
			add("invalid_group", "project.optional-dependencies",
				fmt.Sprintf("%q is not a valid group name", group))
		}
		validateGroup(&errs, "project.optional-dependencies."+group, deps)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateGroup checks one dependency list for duplicates and
// contradictory constraint sets.
func validateGroup(errs *ValidationErrors, field string, deps []*version.Specifier) {
	seen := make(map[string]int, len(deps))
	for i, dep := range deps {
		if prev, ok := seen[dep.Name]; ok {
			*errs = append(*errs, &ValidationError{
				Rule:    "duplicate_dependency",
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Details: fmt.Sprintf("%q already declared at index %d", dep.Name, prev),
			})
			continue
		}
		seen[dep.Name] = i

		if dep.Constraints.Contradictory() {
			*errs = append(*errs, &ValidationError{
				Rule:    "contradictory_constraints",
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Details: fmt.Sprintf("%q admits no version", dep.Raw()),
			})
		}
	}
}

// validClassifier reports whether a classifier tag is well-formed:
// one or more non-empty segments separated by " :: ".
func validClassifier(c string) bool {
	if strings.TrimSpace(c) == "" {
		return false
	}
	for _, seg := range strings.Split(c, "::") {
		if strings.TrimSpace(seg) == "" {
			return false
		}
	}
	return true
}
