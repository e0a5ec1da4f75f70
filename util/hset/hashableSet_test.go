package hset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/no-preserve-root/quanteq/term"
	"github.com/no-preserve-root/quanteq/util/hset"
)

func TestHSet(t *testing.T) {
	store := term.NewStore()
	a := store.Const("a", term.IntSort)
	b := store.Const("b", term.IntSort)

	s := hset.New[*term.Term](term.Hasher{}, a, b, a)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(a))
	assert.True(t, s.Contains(b))

	s.Remove(a)
	assert.False(t, s.Contains(a))
	assert.Equal(t, 1, s.Len())

	seen := 0
	for range s.All() {
		seen++
	}
	assert.Equal(t, 1, seen)
}
