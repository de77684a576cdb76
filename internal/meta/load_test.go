package meta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDescriptor = `
[project]
name = "DLpy"
version = "0.1.0"
description = "Educational deep learning library built on top of numpy"
license = "MIT"
license-file = "LICENSE"
requires-python = ">=3.10"
classifiers = [
    "Development Status :: 3 - Alpha",
    "Intended Audience :: Education",
    "Programming Language :: Python :: 3.10",
]
dependencies = ["numpy>=1.24"]

[[project.authors]]
name = "Antonio Lujano Luna"
email = "antonio@example.org"

[project.optional-dependencies]
dev = [
    "pytest>=7.4",
    "pytest-cov>=4.1",
    "pytest-xdist>=3.5",
    "black>=23.12",
    "isort>=5.13",
    "mypy>=1.8",
    "flake8>=7.0",
]
`

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dlpyd.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoad verifies a complete descriptor round-trips into Metadata.
func TestLoad(t *testing.T) {
	m, err := Load(writeDescriptor(t, sampleDescriptor))
	require.NoError(t, err)

	assert.Equal(t, "DLpy", m.Name)
	assert.Equal(t, "dlpy", m.NormalizedName())
	assert.Equal(t, "0.1.0", m.Version.String())
	assert.Equal(t, "MIT", m.License)
	assert.Equal(t, "LICENSE", m.LicenseFile)
	assert.Len(t, m.Classifiers, 3)
	assert.Equal(t, ">=3.10", m.RequiresInterpreter.String())

	require.Len(t, m.Authors, 1)
	assert.Equal(t, "Antonio Lujano Luna", m.Authors[0].Name)

	require.Len(t, m.Dependencies, 1)
	assert.Equal(t, "numpy", m.Dependencies[0].Name)

	dev, ok := m.Group("dev")
	require.True(t, ok)
	assert.Len(t, dev, 7)

	// Runtime deps plus the dev group.
	assert.Len(t, m.AllDependencies("dev"), 8)
	assert.Len(t, m.AllDependencies(), 1)
}

// TestLoadMissingFile verifies a useful error for a missing descriptor.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open descriptor")
}

// TestReadUnknownKeys verifies strict decoding rejects unknown keys.
func TestReadUnknownKeys(t *testing.T) {
	descriptor := `
[project]
name = "DLpy"
version = "0.1.0"
requieres-python = ">=3.10"
`
	_, err := Read(strings.NewReader(descriptor))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKeys)
	assert.Contains(t, err.Error(), "requieres-python")
}

// TestReadMissingProject verifies the [project] table is mandatory.
func TestReadMissingProject(t *testing.T) {
	_, err := Read(strings.NewReader(`title = "not a descriptor"`))
	require.Error(t, err)
	// The stray key is caught first by strict decoding; an empty file
	// reports the missing table.
	_, err = Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingProject)
}

// TestReadFieldErrors verifies version-shaped fields fail with field
// context.
func TestReadFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "bad version",
			body:      "name = \"DLpy\"\nversion = \"one.two\"",
			wantField: "project.version",
		},
		{
			name:      "bad requires-python",
			body:      "name = \"DLpy\"\nversion = \"0.1.0\"\nrequires-python = \">=three\"",
			wantField: "project.requires-python",
		},
		{
			name:      "bad dependency",
			body:      "name = \"DLpy\"\nversion = \"0.1.0\"\ndependencies = [\"numpy>=1.24\", \"-bad>=1\"]",
			wantField: "project.dependencies[1]",
		},
		{
			name:      "bad optional dependency",
			body:      "name = \"DLpy\"\nversion = \"0.1.0\"\n[project.optional-dependencies]\ndev = [\"pytest>>7\"]",
			wantField: "project.optional-dependencies.dev[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader("[project]\n" + tt.body))
			require.Error(t, err)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantField, fe.Field)
		})
	}
}

// TestReadCollidingGroups verifies two groups whose names normalize to
// the same key are rejected instead of silently merged.
func TestReadCollidingGroups(t *testing.T) {
	_, err := Read(strings.NewReader(`
[project]
name = "DLpy"
version = "0.1.0"

[project.optional-dependencies]
dev = ["pytest>=7.4"]
DEV = ["mypy>=1.8"]
`))
	require.Error(t, err)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Field, "project.optional-dependencies.")
	assert.Contains(t, err.Error(), "collides")
}
