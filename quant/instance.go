package quant

import (
	"github.com/no-preserve-root/quanteq/term"
	"github.com/no-preserve-root/quanteq/util/hset"
)

// nestedMember searches n, children before n itself, for the first
// subterm that is a member of class. The memo is scoped to one top-level
// call so shared DAG nodes are visited once. A nil result means no
// member occurs in n's subtree; the caller then keeps its scored
// candidate.
func nestedMember(n *term.Term, class hset.HSet[*term.Term], memo map[*term.Term]*term.Term) *term.Term {
	if cached, ok := memo[n]; ok {
		return cached
	}
	for _, c := range n.Children() {
		if found := nestedMember(c, class, memo); found != nil {
			memo[n] = found
			return found
		}
	}
	if class.Contains(n) {
		memo[n] = n
		return n
	}
	memo[n] = nil
	return nil
}
