package resolve

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioLujanoLuna/DLpyd/internal/meta"
	"github.com/AntonioLujanoLuna/DLpyd/internal/version"
)

func mustVersion(t *testing.T, s string) *version.Version {
	t.Helper()
	v, err := version.Parse(s)
	require.NoError(t, err)
	return v
}

func mustRelease(t *testing.T, v, requires string, deps ...string) *Release {
	t.Helper()
	rel := &Release{Version: mustVersion(t, v)}
	if requires != "" {
		cs, err := version.ParseConstraints(requires)
		require.NoError(t, err)
		rel.RequiresInterpreter = cs
	}
	for _, d := range deps {
		spec, err := version.ParseSpecifier(d)
		require.NoError(t, err)
		rel.Dependencies = append(rel.Dependencies, spec)
	}
	return rel
}

func descriptor(t *testing.T, body string) *meta.Metadata {
	t.Helper()
	m, err := meta.Read(strings.NewReader(body))
	require.NoError(t, err)
	return m
}

func testIndex(t *testing.T) *Index {
	t.Helper()
	return NewIndex(map[string][]*Release{
		"numpy": {
			mustRelease(t, "1.23.5", ">=3.8"),
			mustRelease(t, "1.26.4", ">=3.9"),
			mustRelease(t, "2.0.0", ">=3.9"),
			mustRelease(t, "2.1.0rc1", ">=3.10"),
		},
		"pytest": {
			mustRelease(t, "7.4.4", ">=3.7", "pluggy>=1.2,<2.0", "iniconfig"),
			mustRelease(t, "8.0.0", ">=3.8", "pluggy>=1.4,<2.0", "iniconfig"),
		},
		"pluggy": {
			mustRelease(t, "1.2.0", ">=3.7"),
			mustRelease(t, "1.5.0", ">=3.8"),
		},
		"iniconfig": {
			mustRelease(t, "2.0.0", ">=3.7"),
		},
		"futurelib": {
			mustRelease(t, "1.0.0", ">=3.13"),
		},
	})
}

const resolverDescriptor = `
[project]
name = "DLpy"
version = "0.1.0"
requires-python = ">=3.10"
dependencies = ["numpy>=1.24"]

[project.optional-dependencies]
dev = ["pytest>=7.4"]
`

// TestResolve verifies transitive resolution picks highest releases.
func TestResolve(t *testing.T) {
	r := NewResolver(testIndex(t))
	m := descriptor(t, resolverDescriptor)

	res, err := r.Resolve(context.Background(), m, "dev")
	require.NoError(t, err)

	// Pre-release 2.1.0rc1 must not be picked.
	assert.Equal(t, "2.0.0", res.Version("numpy").String())
	assert.Equal(t, "8.0.0", res.Version("pytest").String())

	// Transitive deps of pytest.
	assert.Equal(t, "1.5.0", res.Version("pluggy").String())
	assert.Equal(t, "2.0.0", res.Version("iniconfig").String())

	require.Len(t, res.Order, 4)
	assert.Equal(t, "pytest", res.Pins["pluggy"].RequiredBy)
	assert.Nil(t, res.Version("nonexistent"))
}

// TestResolveWithoutGroup verifies optional groups stay out unless named.
func TestResolveWithoutGroup(t *testing.T) {
	r := NewResolver(testIndex(t))
	m := descriptor(t, resolverDescriptor)

	res, err := r.Resolve(context.Background(), m)
	require.NoError(t, err)
	assert.Len(t, res.Pins, 1)
	assert.Nil(t, res.Version("pytest"))
}

// TestResolveSequential verifies one caller context drives repeated
// resolves: the internal fan-out must not cancel it on success.
func TestResolveSequential(t *testing.T) {
	r := NewResolver(testIndex(t))
	m := descriptor(t, resolverDescriptor)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, err := r.Resolve(ctx, m)
	require.NoError(t, err)
	assert.Len(t, res.Pins, 1)

	res, err = r.Resolve(ctx, m, "dev")
	require.NoError(t, err)
	assert.Equal(t, "1.5.0", res.Version("pluggy").String())
	require.NoError(t, ctx.Err())
}

// TestResolveUnknownGroup verifies a typo in the group name errors.
func TestResolveUnknownGroup(t *testing.T) {
	r := NewResolver(testIndex(t))
	_, err := r.Resolve(context.Background(), descriptor(t, resolverDescriptor), "dve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown optional dependency group "dve"`)
}

// TestResolvePrerelease verifies pre-releases are admitted only when a
// constraint names one.
func TestResolvePrerelease(t *testing.T) {
	r := NewResolver(testIndex(t))
	m := descriptor(t, `
[project]
name = "DLpy"
version = "0.1.0"
requires-python = ">=3.10"
dependencies = ["numpy>=2.1.0rc1"]
`)
	res, err := r.Resolve(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, "2.1.0rc1", res.Version("numpy").String())
}

// TestResolveNotFound verifies the unknown-distribution failure.
func TestResolveNotFound(t *testing.T) {
	r := NewResolver(testIndex(t))
	m := descriptor(t, `
[project]
name = "DLpy"
version = "0.1.0"
dependencies = ["scipy>=1.0"]
`)
	_, err := r.Resolve(context.Background(), m)
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "scipy", nf.Name)
}

// TestResolveUnsatisfiable verifies the no-matching-release failure
// lists available versions.
func TestResolveUnsatisfiable(t *testing.T) {
	r := NewResolver(testIndex(t))
	m := descriptor(t, `
[project]
name = "DLpy"
version = "0.1.0"
dependencies = ["numpy>=9.0"]
`)
	_, err := r.Resolve(context.Background(), m)
	require.Error(t, err)

	var us *UnsatisfiableError
	require.ErrorAs(t, err, &us)
	assert.Equal(t, "numpy", us.Name)
	assert.NotEmpty(t, us.Available)
	assert.Contains(t, us.Error(), "2.0.0")
}

// TestResolveInterpreterConflict verifies a release demanding a newer
// interpreter than declared is reported when no alternative exists.
func TestResolveInterpreterConflict(t *testing.T) {
	r := NewResolver(testIndex(t))
	m := descriptor(t, `
[project]
name = "DLpy"
version = "0.1.0"
requires-python = ">=3.10,<3.13"
dependencies = ["futurelib>=1.0"]
`)
	_, err := r.Resolve(context.Background(), m)
	require.Error(t, err)

	var ic *InterpreterConflictError
	require.ErrorAs(t, err, &ic)
	assert.Equal(t, "futurelib", ic.Name)
	assert.Equal(t, "1.0.0", ic.Version.String())
}

// TestResolveInterpreterFallback verifies an older release is preferred
// over an interpreter-incompatible newer one.
func TestResolveInterpreterFallback(t *testing.T) {
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
	res, err := r.Resolve(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, "1.26.4", res.Version("numpy").String())
}

// TestResolveConflict verifies disjoint requirement paths are detected.
func TestResolveConflict(t *testing.T) {
	idx := NewIndex(map[string][]*Release{
		"a": {mustRelease(t, "1.0", "", "c>=2.0")},
		"b": {mustRelease(t, "1.0", "", "c<2.0")},
		"c": {
			mustRelease(t, "1.0", ""),
			mustRelease(t, "2.5", ""),
		},
	})
	r := NewResolver(idx, WithParallelism(1))
	m := descriptor(t, `
[project]
name = "DLpy"
version = "0.1.0"
dependencies = ["a>=1.0", "b>=1.0"]
`)
	_, err := r.Resolve(context.Background(), m)
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "c", conflict.Name)
}

// TestResolveMarkerSkipped verifies marker-guarded specifiers are not
// resolved.
func TestResolveMarkerSkipped(t *testing.T) {
	r := NewResolver(testIndex(t))
	m := descriptor(t, `
[project]
name = "DLpy"
version = "0.1.0"
dependencies = ["numpy>=1.24", "scipy>=1.0; python_version < \"3.0\""]
`)
	res, err := r.Resolve(context.Background(), m)
	require.NoError(t, err)
	assert.Len(t, res.Pins, 1)
}

// TestResolveCancelled verifies context cancellation stops the walk.
func TestResolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewResolver(testIndex(t))
	_, err := r.Resolve(ctx, descriptor(t, resolverDescriptor), "dev")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
