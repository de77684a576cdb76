package meta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioLujanoLuna/DLpyd/internal/version"
)

func loadValid(t *testing.T) *Metadata {
	t.Helper()
	m, err := Read(strings.NewReader(sampleDescriptor))
	require.NoError(t, err)
	return m
}

func mustConstraints(t *testing.T, s string) version.Constraints {
	t.Helper()
	cs, err := version.ParseConstraints(s)
	require.NoError(t, err)
	return cs
}

func mustSpecifier(t *testing.T, s string) *version.Specifier {
	t.Helper()
	spec, err := version.ParseSpecifier(s)
	require.NoError(t, err)
	return spec
}

// TestValidateOK verifies the sample descriptor passes every rule.
func TestValidateOK(t *testing.T) {
	require.NoError(t, Validate(loadValid(t)))
}

// TestValidateRules exercises each semantic rule.
func TestValidateRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Metadata)
		wantRule string
	}{
		{
			name:     "missing name",
			mutate:   func(m *Metadata) { m.Name = "" },
			wantRule: "missing_name",
		},
		{
			name:     "invalid name",
			mutate:   func(m *Metadata) { m.Name = "-dlpy-" },
			wantRule: "invalid_name",
		},
		{
			name:     "missing version",
			mutate:   func(m *Metadata) { m.Version = nil },
			wantRule: "missing_version",
		},
		{
			name:     "empty classifier segment",
			mutate:   func(m *Metadata) { m.Classifiers = append(m.Classifiers, "Topic :: ") },
			wantRule: "invalid_classifier",
		},
		{
			name: "contradictory interpreter constraint",
			mutate: func(m *Metadata) {
				m.RequiresInterpreter = mustConstraints(t, ">=3.12,<3.10")
			},
			wantRule: "contradictory_interpreter",
		},
		{
			name: "duplicate runtime dependency",
			mutate: func(m *Metadata) {
				m.Dependencies = append(m.Dependencies, mustSpecifier(t, "NumPy>=1.20"))
			},
			wantRule: "duplicate_dependency",
		},
		{
			name: "duplicate dependency in group",
			mutate: func(m *Metadata) {
				m.OptionalDependencies["dev"] = append(m.OptionalDependencies["dev"],
					mustSpecifier(t, "pytest_cov>=4.0"))
			},
			wantRule: "duplicate_dependency",
		},
		{
			name: "contradictory dependency constraints",
			mutate: func(m *Metadata) {
				m.Dependencies = []*version.Specifier{mustSpecifier(t, "numpy>=2.0,<1.0")}
			},
			wantRule: "contradictory_constraints",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loadValid(t)
			tt.mutate(m)

			err := Validate(m)
			require.Error(t, err)

			var errs ValidationErrors
			require.ErrorAs(t, err, &errs)

			found := false
			for _, e := range errs {
				if e.Rule == tt.wantRule {
					found = true
				}
			}
			assert.True(t, found, "expected rule %q in %v", tt.wantRule, errs)
		})
	}
}

// TestValidateCollectsAll verifies multiple violations surface together.
func TestValidateCollectsAll(t *testing.T) {
	m := loadValid(t)
	m.Name = ""
	m.Version = nil
	m.Classifiers = []string{":: nope"}

	err := Validate(m)
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}
