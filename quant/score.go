package quant

import (
	"github.com/no-preserve-root/quanteq/term"
)

const (
	// scoreReject marks a candidate that may never be chosen
	scoreReject = -2
	// scoreUndesired marks a candidate eligible only when nothing
	// non-negative exists; it never displaces a non-negative score
	scoreUndesired = -1
)

// repScore ranks a candidate member of an equivalence class against the
// target variable sort. Non-negative scores rank eligible candidates,
// smaller better. The tiers are mutually exclusive and checked in order.
func (s *Selector) repScore(n *term.Term, varSort term.Sort) int {
	switch {
	case s.opts.Cbqi && s.db.HasInstConstant(n):
		return scoreReject
	case !n.Sort().SubtypeOf(varSort):
		return scoreReject
	case s.opts.RestrictInstClosure && (!s.db.IsInstClosure(n) || !s.db.HasTermCurrent(n)):
		return scoreUndesired
	case s.opts.InstMaxLevel != NoInstMaxLevel:
		// prefer the lowest instantiation level; input terms carry no
		// level
		if level, ok := s.db.InstLevel(n); ok {
			return level
		}
		if s.opts.InstLevelInputOnly {
			return scoreUndesired
		}
		return 0
	case s.opts.Mode == RepModeFirst:
		// prefer the earliest use of this term as a representative
		if generation, ok := s.firstChosen[n]; ok {
			return generation
		}
		return scoreUndesired
	default:
		return n.Depth()
	}
}
