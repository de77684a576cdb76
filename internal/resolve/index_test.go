package resolve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `
packages:
  numpy:
    - version: "1.23.5"
      requires-python: ">=3.8"
    - version: "1.26.4"
      requires-python: ">=3.9"
    - version: "2.0.0"
      requires-python: ">=3.9"
  pytest:
    - version: "7.4.4"
      requires-python: ">=3.7"
      dependencies: ["pluggy>=1.2,<2.0"]
  pluggy:
    - version: "1.5.0"
      requires-python: ">=3.8"
`

// TestReadIndex verifies snapshot parsing and release ordering.
func TestReadIndex(t *testing.T) {
	idx, err := ReadIndex(strings.NewReader(sampleSnapshot))
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())

	rels, ok := idx.Releases("numpy")
	require.True(t, ok)
	require.Len(t, rels, 3)

	// Newest first.
	assert.Equal(t, "2.0.0", rels[0].Version.String())
	assert.Equal(t, "1.23.5", rels[2].Version.String())

	// Lookup is normalized.
	_, ok = idx.Releases("NumPy")
	assert.True(t, ok)

	_, ok = idx.Releases("scipy")
	assert.False(t, ok)
}

// TestReadIndexStrict verifies unknown keys and bad values are rejected.
func TestReadIndexStrict(t *testing.T) {
	_, err := ReadIndex(strings.NewReader("packages: {}\nextra: true\n"))
	require.Error(t, err)

	_, err = ReadIndex(strings.NewReader("packages:\n  numpy:\n    - version: \"not-a-version\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `package "numpy"`)

	_, err = ReadIndex(strings.NewReader("packages:\n  numpy:\n    - version: \"1.0\"\n      dependencies: [\"-bad\"]\n"))
	require.Error(t, err)
}

// TestNewIndexSorts verifies programmatic construction sorts releases.
func TestNewIndexSorts(t *testing.T) {
	idx := NewIndex(map[string][]*Release{
		"Foo_Bar": {
			{Version: mustVersion(t, "1.0")},
			{Version: mustVersion(t, "2.0")},
			{Version: mustVersion(t, "1.5")},
		},
	})

	rels, ok := idx.Releases("foo-bar")
	require.True(t, ok)
	assert.Equal(t, "2.0", rels[0].Version.String())
	assert.Equal(t, "1.5", rels[1].Version.String())
	assert.Equal(t, "1.0", rels[2].Version.String())
}
