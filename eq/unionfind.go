package eq

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/xtgo/set"

	"github.com/no-preserve-root/quanteq/internal/log"
	"github.com/no-preserve-root/quanteq/term"
	"github.com/no-preserve-root/quanteq/util"
)

var logger = term.SlogLogger(log.DefaultLogger).With("section", "eqengine")

var _ Engine = (*UnionFind)(nil)

// UnionFind is a path-compressed union-find engine over terms, with a
// disequality store. It does not do congruence propagation; it is the
// reference Engine used by the CLI and the tests.
type UnionFind struct {
	parent  map[*term.Term]*term.Term
	classes map[*term.Term][]*term.Term
	diseq   map[util.Pair[*term.Term, *term.Term]]struct{}
	added   []*term.Term
}

func NewUnionFind() *UnionFind {
	return &UnionFind{
		parent:  make(map[*term.Term]*term.Term),
		classes: make(map[*term.Term][]*term.Term),
		diseq:   make(map[util.Pair[*term.Term, *term.Term]]struct{}),
	}
}

// Add registers t with the engine. Registering the same term again is a
// no-op for the equivalence structure but is still recorded, so Terms
// dedups on read.
func (u *UnionFind) Add(t *term.Term) {
	u.added = append(u.added, t)
	if _, ok := u.parent[t]; ok {
		return
	}
	u.parent[t] = t
	u.classes[t] = []*term.Term{t}
}

func (u *UnionFind) HasTerm(t *term.Term) bool {
	_, ok := u.parent[t]
	return ok
}

func (u *UnionFind) Representative(t *term.Term) *term.Term {
	if !u.HasTerm(t) {
		panic(fmt.Sprintf("representative of unregistered term %v", t))
	}
	return u.find(t)
}

func (u *UnionFind) find(t *term.Term) *term.Term {
	root := t
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[t] != root {
		next := u.parent[t]
		u.parent[t] = root
		t = next
	}
	return root
}

// Merge asserts a = b. It fails if the two classes were previously
// asserted distinct.
func (u *UnionFind) Merge(a, b *term.Term) error {
	u.Add(a)
	u.Add(b)
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return nil
	}
	if _, clash := u.diseq[repPair(ra, rb)]; clash {
		return errors.Errorf("merge of %v and %v contradicts a distinct assertion", a, b)
	}
	logger.Debug("merging classes", "into", ra, "from", rb)
	// members keep merge order: absorbed class appended after the
	// surviving one
	u.parent[rb] = ra
	u.classes[ra] = append(u.classes[ra], u.classes[rb]...)
	delete(u.classes, rb)
	u.rehashDiseq(rb, ra)
	return nil
}

// Distinct asserts a != b. It fails if the two terms are already equal.
func (u *UnionFind) Distinct(a, b *term.Term) error {
	u.Add(a)
	u.Add(b)
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return errors.Errorf("distinct assertion on already-equal terms %v and %v", a, b)
	}
	u.diseq[repPair(ra, rb)] = struct{}{}
	return nil
}

func (u *UnionFind) AreEqual(a, b *term.Term) bool {
	return u.find(a) == u.find(b)
}

func (u *UnionFind) AreDisequal(a, b *term.Term) bool {
	_, ok := u.diseq[repPair(u.find(a), u.find(b))]
	return ok
}

func (u *UnionFind) Class(t *term.Term) []*term.Term {
	members := u.classes[u.find(t)]
	out := make([]*term.Term, len(members))
	copy(out, members)
	return out
}

// Terms lists every registered term, deduplicated, in term-id order.
func (u *UnionFind) Terms() []*term.Term {
	terms := make(byID, len(u.added))
	copy(terms, u.added)
	sort.Sort(terms)
	n := set.Uniq(terms)
	return terms[:n]
}

// rehashDiseq re-canonicalizes disequality pairs that named the absorbed
// representative.
func (u *UnionFind) rehashDiseq(absorbed, surviving *term.Term) {
	for pair := range u.diseq {
		if pair.Fst != absorbed && pair.Snd != absorbed {
			continue
		}
		delete(u.diseq, pair)
		a, b := pair.Fst, pair.Snd
		if a == absorbed {
			a = surviving
		}
		if b == absorbed {
			b = surviving
		}
		u.diseq[repPair(a, b)] = struct{}{}
	}
}

// repPair orders a representative pair by term id so that (a,b) and (b,a)
// key the same entry.
func repPair(a, b *term.Term) util.Pair[*term.Term, *term.Term] {
	if b.ID() < a.ID() {
		a, b = b, a
	}
	return util.NewPair(a, b)
}

type byID []*term.Term

func (s byID) Len() int           { return len(s) }
func (s byID) Less(i, j int) bool { return s[i].ID() < s[j].ID() }
func (s byID) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
