package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMarksSubtermsCurrent(t *testing.T) {
	store := NewStore()
	db := NewDatabase(store)
	a := store.Const("a", IntSort)
	fa := store.Apply("f", IntSort, a)

	assert.False(t, db.HasTermCurrent(fa))
	db.Register(fa)
	assert.True(t, db.HasTermCurrent(fa))
	assert.True(t, db.HasTermCurrent(a))
}

func TestCongruentTerm(t *testing.T) {
	store := NewStore()
	db := NewDatabase(store)
	a := store.Const("a", IntSort)
	b := store.Const("b", IntSort)
	fa := store.Apply("f", IntSort, a)
	db.Register(fa)

	got, ok := db.CongruentTerm("f", []*Term{a})
	require.True(t, ok)
	assert.Same(t, fa, got)

	// f(b) was never registered
	_, ok = db.CongruentTerm("f", []*Term{b})
	assert.False(t, ok)
	// neither was g(a)
	_, ok = db.CongruentTerm("g", []*Term{a})
	assert.False(t, ok)
}

func TestInstMetadata(t *testing.T) {
	store := NewStore()
	db := NewDatabase(store)
	a := store.Const("a", IntSort)
	b := store.Const("b", IntSort)

	assert.False(t, db.HasInstConstant(a))
	db.MarkInstConstant(a)
	assert.True(t, db.HasInstConstant(a))
	assert.False(t, db.HasInstConstant(b))

	assert.False(t, db.IsInstClosure(b))
	db.MarkInstClosure(b)
	assert.True(t, db.IsInstClosure(b))

	_, ok := db.InstLevel(a)
	assert.False(t, ok)
	db.SetInstLevel(a, 3)
	level, ok := db.InstLevel(a)
	require.True(t, ok)
	assert.Equal(t, 3, level)
}
