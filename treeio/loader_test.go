package treeio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asttools/treediff/tree"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadUnits(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "greeter.yaml", `
kind: compilation-unit
children:
  imports: []
  types:
    - kind: class
      name: Greeter
      children: {members: []}
`)
	units, err := LoadUnits(path)
	require.NoError(t, err)
	require.Len(t, units, 1)
	require.NoError(t, tree.Validate(units[0]))
}

func TestLoadUnitsErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		_, err := LoadUnits("")
		assert.ErrorIs(t, err, ErrTreeRequired)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadUnits(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrTreeRequired)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty payload", func(t *testing.T) {
		t.Parallel()
		_, err := LoadUnits(writeFile(t, "empty.yaml", "  \n\t\n"))
		assert.ErrorIs(t, err, ErrTreeRequired)
	})
}

func TestLoadPositions(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "positions.yaml", `
Greeter:
  $.types[0].members[0]:
    span: {line: 3, column: 5, endLine: 3, endColumn: 14}
    text: "return 3;"
`)
	ctx, err := LoadPositions(path)
	require.NoError(t, err)

	p, err := tree.ParsePath("Greeter:$.types[0].members[0]")
	require.NoError(t, err)
	ex, ok := ctx.Lookup(p)
	require.True(t, ok)
	assert.Equal(t, "return 3;", ex.Text)
	assert.Equal(t, tree.Span{Line: 3, Column: 5, EndLine: 3, EndColumn: 14}, ex.Span)
}

func TestLoadPositionsRejectsBadPath(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "positions.yaml", `
Greeter:
  "types[0]": {span: {line: 1, column: 1}, text: x}
`)
	_, err := LoadPositions(path)
	assert.ErrorIs(t, err, ErrTreeInvalid)
}
