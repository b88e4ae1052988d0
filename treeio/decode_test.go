package treeio

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asttools/treediff/tree"
	"github.com/asttools/treediff/treediff"
)

func TestParseUnitsSingleDocument(t *testing.T) {
	t.Parallel()

	units, err := ParseUnits([]byte(`
kind: compilation-unit
children:
  imports: []
  types:
    - kind: class
      name: Greeter
      modifiers: [public]
      children:
        members: []
`))
	require.NoError(t, err)
	require.Len(t, units, 1)

	u := units[0]
	assert.Equal(t, tree.KindCompilationUnit, u.Kind)
	types, ok := u.Seq(tree.RoleTypes)
	require.True(t, ok)
	require.Len(t, types, 1)
	assert.Equal(t, "Greeter", types[0].Name)
	assert.Equal(t, []string{"public"}, types[0].Modifiers)
}

func TestParseUnitsList(t *testing.T) {
	t.Parallel()

	units, err := ParseUnits([]byte(`
- kind: compilation-unit
  children:
    imports: []
    types:
      - kind: class
        name: A
        children: {members: []}
- kind: compilation-unit
  children:
    imports: []
    types:
      - kind: class
        name: B
        children: {members: []}
`))
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "A", mustTypes(t, units[0])[0].Name)
	assert.Equal(t, "B", mustTypes(t, units[1])[0].Name)
}

func mustTypes(t *testing.T, unit *tree.Node) []*tree.Node {
	t.Helper()
	types, ok := unit.Seq(tree.RoleTypes)
	require.True(t, ok)
	return types
}

func TestParseUnitsAbsentVersusEmptySequence(t *testing.T) {
	t.Parallel()

	// Omitting the elements key yields a dimension-only array; an explicit
	// empty list yields an initializer-list form with zero elements.
	dimOnly, err := ParseUnits([]byte(`
kind: new-array
children:
  dimensions:
    - {kind: literal, value: 3}
`))
	require.NoError(t, err)
	_, ok := dimOnly[0].Seq(tree.RoleElements)
	assert.False(t, ok, "omitted sequence must stay absent")

	withInit, err := ParseUnits([]byte(`
kind: new-array
children:
  dimensions: []
  elements: []
`))
	require.NoError(t, err)
	elems, ok := withInit[0].Seq(tree.RoleElements)
	require.True(t, ok, "explicit empty sequence must be present")
	assert.Empty(t, elems)
}

func TestParseUnitsNormalizesIntegerValues(t *testing.T) {
	t.Parallel()

	units, err := ParseUnits([]byte(`{kind: literal, value: 42}`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), units[0].Value)

	units, err = ParseUnits([]byte(`{kind: literal, value: "42"}`))
	require.NoError(t, err)
	assert.Equal(t, "42", units[0].Value)

	units, err = ParseUnits([]byte(`{kind: literal}`))
	require.NoError(t, err)
	assert.Nil(t, units[0].Value, "missing value decodes to the null literal")
}

func TestParseUnitsIntegerBoundaries(t *testing.T) {
	t.Parallel()

	units, err := ParseUnits([]byte(`{kind: literal, value: 9223372036854775807}`))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), units[0].Value)

	// Values beyond the int64 range keep their unsigned width instead of
	// wrapping to a negative number.
	units, err = ParseUnits([]byte(`{kind: literal, value: 18446744073709551615}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), units[0].Value)

	negative, err := ParseUnits([]byte(`{kind: literal, value: -1}`))
	require.NoError(t, err)
	require.Equal(t, int64(-1), negative[0].Value)

	d, err := treediff.DiffSubtrees(units[0], negative[0], tree.Path{}, tree.Path{})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len(), "max uint64 must not compare equal to -1")
}

func TestParseUnitsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		msg     string
	}{
		{
			name:    "unknown kind",
			payload: `{kind: struct}`,
			msg:     `unknown kind "struct"`,
		},
		{
			name:    "composite literal value",
			payload: "kind: literal\nvalue: [1, 2]",
			msg:     "literal value must be a scalar",
		},
		{
			name:    "mapping literal value",
			payload: "kind: literal\nvalue: {a: 1}",
			msg:     "literal value must be a scalar",
		},
		{
			name:    "unknown role",
			payload: "kind: block\nchildren: {limbs: []}",
			msg:     `unknown role "limbs"`,
		},
		{
			name:    "role not allowed on kind",
			payload: "kind: block\nchildren: {condition: {kind: literal, value: true}}",
			msg:     "block does not allow a condition child",
		},
		{
			name:    "scalar where sequence expected",
			payload: "kind: block\nchildren: {statements: 3}",
			msg:     "expected a sequence",
		},
		{
			name:    "scalar where node expected",
			payload: "kind: return\nchildren: {expression: 3}",
			msg:     "expected a node mapping",
		},
		{
			name:    "not yaml at all",
			payload: "\t{",
			msg:     "invalid tree payload",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseUnits([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTreeInvalid)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestEncodeUnitsRoundTrip(t *testing.T) {
	t.Parallel()

	unit := tree.Unit(tree.Class("Greeter",
		tree.Method("greet").
			WithModifiers("public").
			With(tree.RoleReturnType, tree.PrimType("void")).
			With(tree.RoleBody, tree.Block(
				tree.ExprStmt(tree.Call(tree.Ident("out"), "println", tree.Lit("hello"))),
				tree.NewNode(tree.KindReturn),
			)),
		tree.Variable("count", tree.PrimType("int")).
			With(tree.RoleInitializer, tree.Lit(int64(0))),
	)).WithSeq(tree.RoleImports, tree.Import("java.io.PrintStream"))

	var buf strings.Builder
	require.NoError(t, EncodeUnits(&buf, []*tree.Node{unit}))

	decoded, err := ParseUnits([]byte(buf.String()))
	require.NoError(t, err)
	require.Len(t, decoded, 1)

	d, err := treediff.DiffUnits([]*tree.Node{unit}, decoded)
	require.NoError(t, err)
	assert.True(t, d.IsEmpty(), "round-tripped unit differs:\n%s", d.Report(nil))
}

func TestEncodeUnitsDeterministic(t *testing.T) {
	t.Parallel()

	unit := tree.Unit(tree.Class("A", sampleField("x"), sampleField("y")))

	var first, second strings.Builder
	require.NoError(t, EncodeUnits(&first, []*tree.Node{unit}))
	require.NoError(t, EncodeUnits(&second, []*tree.Node{unit}))
	assert.Equal(t, first.String(), second.String())
}

func sampleField(name string) *tree.Node {
	return tree.Variable(name, tree.PrimType("int")).WithModifiers("private")
}
