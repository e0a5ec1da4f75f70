// Package hset implements a set of hashable elements, JVM style
package hset

import (
	"iter"

	"github.com/benbjohnson/immutable"
)

// HSet is a shallow wrapper around a map keyed by element hash
// use util.MSet if your elements are comparable
type HSet[A any] struct {
	hasher     immutable.Hasher[A]
	underlying map[uint32][]A
}

func Empty[A any](hasher immutable.Hasher[A]) HSet[A] {
	return HSet[A]{
		hasher:     hasher,
		underlying: make(map[uint32][]A),
	}
}

func New[A any](hasher immutable.Hasher[A], elems ...A) HSet[A] {
	n := Empty(hasher)
	for _, elem := range elems {
		n.Add(elem)
	}
	return n
}

func (s HSet[A]) Add(elems ...A) {
	for _, elem := range elems {
		h := s.hasher.Hash(elem)
		if !s.bucketContains(h, elem) {
			s.underlying[h] = append(s.underlying[h], elem)
		}
	}
}

func (s HSet[A]) Remove(elems ...A) {
	for _, elem := range elems {
		h := s.hasher.Hash(elem)
		bucket := s.underlying[h]
		for i, other := range bucket {
			if s.hasher.Equal(elem, other) {
				s.underlying[h] = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(s.underlying[h]) == 0 {
			delete(s.underlying, h)
		}
	}
}

func (s HSet[A]) Contains(elem A) bool {
	return s.bucketContains(s.hasher.Hash(elem), elem)
}

func (s HSet[A]) bucketContains(h uint32, elem A) bool {
	for _, other := range s.underlying[h] {
		if s.hasher.Equal(elem, other) {
			return true
		}
	}
	return false
}

func (s HSet[A]) Len() int {
	n := 0
	for _, bucket := range s.underlying {
		n += len(bucket)
	}
	return n
}

func (s HSet[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, bucket := range s.underlying {
			for _, elem := range bucket {
				if !yield(elem) {
					return
				}
			}
		}
	}
}
