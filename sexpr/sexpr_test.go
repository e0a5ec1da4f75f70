package sexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/no-preserve-root/quanteq/sexpr"
)

func TestParse(t *testing.T) {
	nodes, err := sexpr.Parse(`
		(declare-const a Int) ; a comment
		(assert (= a b))
	`)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, "(declare-const a Int)", nodes[0].String())
	assert.Equal(t, "(assert (= a b))", nodes[1].String())
	assert.Equal(t, 2, nodes[0].Line)
	assert.Equal(t, 3, nodes[1].Line)
}

func TestParseAtoms(t *testing.T) {
	nodes, err := sexpr.Parse("foo ()")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.True(t, nodes[0].IsAtom())
	assert.Equal(t, "foo", nodes[0].Atom)
	assert.False(t, nodes[1].IsAtom())
	assert.Empty(t, nodes[1].List)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "unclosed list", input: "(assert (= a b)"},
		{name: "stray close", input: ")"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sexpr.Parse(tc.input)
			assert.Error(t, err)
		})
	}
}
