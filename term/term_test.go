package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInternsTerms(t *testing.T) {
	store := NewStore()
	a1 := store.Const("a", IntSort)
	a2 := store.Const("a", IntSort)
	assert.Same(t, a1, a2)

	f1 := store.Apply("f", IntSort, a1)
	f2 := store.Apply("f", IntSort, a2)
	assert.Same(t, f1, f2)

	// same name, different kind
	v := store.Value("a", IntSort)
	assert.NotSame(t, a1, v)
}

func TestDepth(t *testing.T) {
	store := NewStore()
	a := store.Const("a", IntSort)
	b := store.Const("b", IntSort)
	f := store.Apply("f", IntSort, a)
	g := store.Apply("g", IntSort, f, b)

	assert.Equal(t, 0, a.Depth())
	assert.Equal(t, 1, f.Depth())
	assert.Equal(t, 2, g.Depth())
}

func TestSubtypeOf(t *testing.T) {
	store := NewStore()
	u := store.DeclareSort("U")
	testCases := []struct {
		name     string
		sub, sup Sort
		expected bool
	}{
		{name: "reflexive base", sub: IntSort, sup: IntSort, expected: true},
		{name: "int below real", sub: IntSort, sup: RealSort, expected: true},
		{name: "real not below int", sub: RealSort, sup: IntSort, expected: false},
		{name: "bool unrelated", sub: BoolSort, sup: IntSort, expected: false},
		{name: "user reflexive", sub: u, sup: u, expected: true},
		{name: "user not below base", sub: u, sup: RealSort, expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.sub.SubtypeOf(tc.sup))
		})
	}
}

func TestDeclareSortInterns(t *testing.T) {
	store := NewStore()
	u1 := store.DeclareSort("U")
	u2 := store.DeclareSort("U")
	assert.Same(t, u1, u2)

	got, ok := store.SortByName("U")
	require.True(t, ok)
	assert.Equal(t, Sort(u1), got)
}

func TestString(t *testing.T) {
	store := NewStore()
	a := store.Const("a", IntSort)
	b := store.Const("b", IntSort)
	g := store.Apply("g", IntSort, store.Apply("f", IntSort, a), b)
	assert.Equal(t, "(g (f a) b)", g.String())

	x := store.Bound("x", IntSort)
	q := store.Forall([]*Term{x}, store.Apply("p", BoolSort, x))
	assert.Equal(t, "(forall ((x Int)) (p x))", q.String())
}

func TestIsConstant(t *testing.T) {
	store := NewStore()
	a := store.Const("a", IntSort)
	one := store.Value("1", IntSort)
	two := store.Value("2", IntSort)

	assert.False(t, a.IsConstant())
	assert.True(t, one.IsConstant())
	assert.True(t, store.Apply("pair", IntSort, one, two).IsConstant())
	assert.False(t, store.Apply("pair", IntSort, one, a).IsConstant())
}

func TestContainsUserValue(t *testing.T) {
	store := NewStore()
	u := store.DeclareSort("U")
	uv := store.Value("@u0", u)
	iv := store.Value("1", IntSort)
	a := store.Const("a", u)

	assert.True(t, ContainsUserValue(uv))
	assert.False(t, ContainsUserValue(iv))
	assert.False(t, ContainsUserValue(a))
	assert.True(t, ContainsUserValue(store.Apply("f", u, a, uv)))
}

func TestBoundVarSort(t *testing.T) {
	store := NewStore()
	x := store.Bound("x", IntSort)
	y := store.Bound("y", RealSort)
	q := store.Forall([]*Term{x, y}, store.Apply("p", BoolSort, x, y))

	assert.Equal(t, Sort(IntSort), BoundVarSort(q, 0))
	assert.Equal(t, Sort(RealSort), BoundVarSort(q, 1))
	assert.Panics(t, func() { BoundVarSort(q, 2) })
	assert.Panics(t, func() { BoundVarSort(x, 0) })
}
