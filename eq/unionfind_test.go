package eq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/no-preserve-root/quanteq/eq"
	"github.com/no-preserve-root/quanteq/term"
)

func TestRepresentativeAndClass(t *testing.T) {
	store := term.NewStore()
	u := eq.NewUnionFind()
	a := store.Const("a", term.IntSort)
	b := store.Const("b", term.IntSort)
	c := store.Const("c", term.IntSort)

	u.Add(a)
	assert.True(t, u.HasTerm(a))
	assert.False(t, u.HasTerm(b))
	assert.Same(t, a, u.Representative(a))

	require.NoError(t, u.Merge(a, b))
	require.NoError(t, u.Merge(b, c))

	rep := u.Representative(c)
	assert.Same(t, a, rep)
	// merge order: surviving class first, absorbed appended
	assert.Equal(t, []*term.Term{a, b, c}, u.Class(c))

	assert.True(t, u.AreEqual(a, c))
	assert.False(t, u.AreDisequal(a, c))
}

func TestClassOrderStable(t *testing.T) {
	store := term.NewStore()
	u := eq.NewUnionFind()
	a := store.Const("a", term.IntSort)
	b := store.Const("b", term.IntSort)
	require.NoError(t, u.Merge(a, b))

	first := u.Class(a)
	second := u.Class(b)
	assert.Equal(t, first, second)
}

func TestDistinct(t *testing.T) {
	store := term.NewStore()
	u := eq.NewUnionFind()
	a := store.Const("a", term.IntSort)
	b := store.Const("b", term.IntSort)
	c := store.Const("c", term.IntSort)

	require.NoError(t, u.Distinct(a, b))
	assert.True(t, u.AreDisequal(a, b))
	assert.True(t, u.AreDisequal(b, a))

	// merging disequal classes must fail
	assert.Error(t, u.Merge(a, b))

	// disequalities follow merged representatives
	require.NoError(t, u.Merge(b, c))
	assert.True(t, u.AreDisequal(a, c))
	assert.Error(t, u.Distinct(b, c))
}

func TestTermsDedups(t *testing.T) {
	store := term.NewStore()
	u := eq.NewUnionFind()
	a := store.Const("a", term.IntSort)
	b := store.Const("b", term.IntSort)
	u.Add(a)
	u.Add(a)
	u.Add(b)
	u.Add(a)

	assert.Equal(t, []*term.Term{a, b}, u.Terms())
}

func TestRepresentativeOfUnregisteredPanics(t *testing.T) {
	store := term.NewStore()
	u := eq.NewUnionFind()
	a := store.Const("a", term.IntSort)
	assert.Panics(t, func() { u.Representative(a) })
}
