// Package model holds the slice of a finite model the representative
// selector needs: the mapping from opaque values the model assigned back
// to the input terms that witnessed them.
package model

import (
	"github.com/no-preserve-root/quanteq/term"
)

type RepSet struct {
	witness map[*term.Term]*term.Term
}

func NewRepSet() *RepSet {
	return &RepSet{witness: make(map[*term.Term]*term.Term)}
}

// Assign records that value was assigned by the model to witness.
// Reassigning a value keeps the first witness.
func (r *RepSet) Assign(value, witness *term.Term) {
	if _, ok := r.witness[value]; ok {
		return
	}
	r.witness[value] = witness
}

// TermForRepresentative maps a model value back to a witnessing input
// term, if the model ever assigned it to one.
func (r *RepSet) TermForRepresentative(value *term.Term) (*term.Term, bool) {
	w, ok := r.witness[value]
	return w, ok
}
