// Package quant implements the equality-reasoning side of quantifier
// instantiation: given any term, it answers with the one canonical,
// well-typed member of that term's equivalence class the instantiation
// machinery should substitute.
package quant

import (
	"fmt"
	"slices"

	"github.com/no-preserve-root/quanteq/eq"
	"github.com/no-preserve-root/quanteq/internal/log"
	"github.com/no-preserve-root/quanteq/model"
	"github.com/no-preserve-root/quanteq/term"
	"github.com/no-preserve-root/quanteq/util/hset"
)

var logger = term.SlogLogger(log.DefaultLogger).With("section", "rep-select")

// Selector chooses internal representatives. It owns its caches; the
// equality engine, term database and model are read-only collaborators.
// Not safe for concurrent use.
type Selector struct {
	opts   Options
	engine eq.Engine
	db     *term.Database
	model  *model.RepSet

	cache repCache
	// firstChosen records, per term, the generation at which it was
	// first chosen as a representative. Unlike the cache it is never
	// cleared: it is the one-way history of choices for RepModeFirst.
	firstChosen map[*term.Term]int
	generation  int
}

// NewSelector builds a selector over the given collaborators. m may be
// nil when no finite model is available.
func NewSelector(opts Options, engine eq.Engine, db *term.Database, m *model.RepSet) *Selector {
	return &Selector{
		opts:        opts,
		engine:      engine,
		db:          db,
		model:       m,
		cache:       newRepCache(),
		firstChosen: make(map[*term.Term]int),
	}
}

func (s *Selector) Generation() int { return s.generation }

// Invalidate wipes the representative cache and opens a new generation.
// Must be called after any change that can retract equalities, such as an
// assertion-level pop. The first-chosen history survives.
func (s *Selector) Invalidate() {
	s.cache.clear()
	s.generation++
}

func (s *Selector) HasTerm(a *term.Term) bool {
	return s.engine.HasTerm(a)
}

// Representative is the equality engine's representative of a, or a
// itself if the engine does not know it.
func (s *Selector) Representative(a *term.Term) *term.Term {
	if s.engine.HasTerm(a) {
		return s.engine.Representative(a)
	}
	return a
}

func (s *Selector) AreEqual(a, b *term.Term) bool {
	if a == b {
		return true
	}
	if s.engine.HasTerm(a) && s.engine.HasTerm(b) {
		return s.engine.AreEqual(a, b)
	}
	return false
}

func (s *Selector) AreDisequal(a, b *term.Term) bool {
	if a == b {
		return false
	}
	if s.engine.HasTerm(a) && s.engine.HasTerm(b) {
		return s.engine.AreDisequal(a, b)
	}
	// distinct values are disequal whether registered or not
	return a.IsConstant() && b.IsConstant()
}

// CongruentTerm looks up a registered application congruent to op(args).
func (s *Selector) CongruentTerm(op string, args []*term.Term) (*term.Term, bool) {
	return s.db.CongruentTerm(op, args)
}

// EquivalenceClass lists every term currently equal to a, or {a} when the
// engine does not know a.
func (s *Selector) EquivalenceClass(a *term.Term) []*term.Term {
	var eqc []*term.Term
	if s.engine.HasTerm(a) {
		eqc = s.engine.Class(a)
	} else {
		eqc = []*term.Term{a}
	}
	// a must be in its own equivalence class
	if !slices.Contains(eqc, a) {
		panic(fmt.Sprintf("term %v missing from its own equivalence class", a))
	}
	return eqc
}

// InternalRepresentative picks the member of a's equivalence class the
// instantiation engine should substitute. When q is non-nil it must be a
// forall term, and the result is typed against its index-th bound
// variable; otherwise against a's own sort. The result within one
// generation is stable for a given (sort, representative) pair.
func (s *Selector) InternalRepresentative(a *term.Term, q *term.Term, index int) *term.Term {
	if q != nil && q.Kind() != term.KindForall {
		panic(fmt.Sprintf("quantifier argument is not a forall term: %v", q))
	}
	r := s.Representative(a)
	if s.opts.FiniteModelFind && r.IsConstant() && term.ContainsUserValue(r) && s.model != nil {
		// map back from values assigned by the model, if any
		if tr, ok := s.model.TermForRepresentative(r); ok {
			r = s.Representative(tr)
		} else if _, user := r.Sort().(*term.UserSort); user {
			// should never happen: values of uninterpreted sorts cannot
			// escape the model
			panic(fmt.Sprintf("no witnessing term for model value %v", r))
		}
	}
	if s.opts.Mode == RepModeEE {
		return r
	}
	varSort := a.Sort()
	if q != nil {
		varSort = term.BoundVarSort(q, index)
	}
	if chosen, ok := s.cache.lookup(varSort, r); ok {
		return chosen
	}
	eqc := s.EquivalenceClass(r)
	logger.Debug("choosing representative", "class-size", len(eqc), "sort", varSort.String(), "rep", r)
	var best *term.Term
	bestScore := -1
	for _, n := range eqc {
		score := s.repScore(n, varSort)
		if score == scoreReject {
			continue
		}
		if best == nil || (score >= 0 && (bestScore < 0 || score < bestScore)) {
			best = n
			bestScore = score
		}
	}
	if best == nil {
		logger.Warn("no valid choice for representative in class", "rep", r)
		best = r
	}
	// make sure no other member of the class occurs inside the choice
	memo := make(map[*term.Term]*term.Term)
	if nested := nestedMember(best, hset.New[*term.Term](term.Hasher{}, eqc...), memo); nested != nil {
		best = nested
	}
	if _, seen := s.firstChosen[best]; !seen {
		s.firstChosen[best] = s.generation
	}
	if !best.Sort().SubtypeOf(varSort) {
		panic(fmt.Sprintf("chosen representative %v has sort %v, not a subtype of %v", best, best.Sort(), varSort))
	}
	s.cache.store(varSort, r, best)
	if best != a {
		logger.Debug("chose internal representative", "term", a, "rep", r, "chosen", best, "score", bestScore)
	}
	return best
}
