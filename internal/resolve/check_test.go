package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckInterpreterOK verifies a consistent descriptor reports clean.
func TestCheckInterpreterOK(t *testing.T) {
	r := NewResolver(testIndex(t))
	m := descriptor(t, resolverDescriptor)

	report, err := r.CheckInterpreter(context.Background(), m, "dev")
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 4, report.Checked)
}

// TestCheckInterpreterConflict verifies the check reports a dependency
// whose naturally pinned release demands a newer interpreter, even
// though Resolve would quietly fall back to an older release.
func TestCheckInterpreterConflict(t *testing.T) {
	idx := NewIndex(map[string][]*Release{
		"numpy": {
			mustRelease(t, "1.26.4", ">=3.9"),
			mustRelease(t, "2.0.0", ">=3.13"),
		},
	})
	r := NewResolver(idx)
	m := descriptor(t, `
[project]
name = "DLpy"
version = "0.1.0"
requires-python = ">=3.10,<3.13"
dependencies = ["numpy>=1.24"]
`)

	// Resolve itself succeeds via the 1.26.4 fallback.
	_, err := r.Resolve(context.Background(), m)
	require.NoError(t, err)

	// The hygiene check pins 2.0.0 by constraints alone and flags it.
	report, err := r.CheckInterpreter(context.Background(), m)
	require.NoError(t, err)
	assert.False(t, report.OK())
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, "numpy", report.Conflicts[0].Name)
	assert.Equal(t, "2.0.0", report.Conflicts[0].Version.String())
}

// TestCheckInterpreterResolutionFailure verifies resolution failures
// propagate.
func TestCheckInterpreterResolutionFailure(t *testing.T) {
	r := NewResolver(testIndex(t))
	m := descriptor(t, `
[project]
name = "DLpy"
version = "0.1.0"
dependencies = ["scipy>=1.0"]
`)
	_, err := r.CheckInterpreter(context.Background(), m)
	require.Error(t, err)

	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}
