// Package eq defines the equality-engine surface the representative
// selector consumes, together with a union-find reference engine. The
// selector only ever reads from an Engine; deriving equalities is the
// engine's business.
package eq

import (
	"github.com/no-preserve-root/quanteq/term"
)

// Engine is the narrow congruence-closure query interface. All operations
// besides HasTerm require the argument to be registered; callers wanting
// unregistered-term fallbacks get them from quant.Selector instead.
type Engine interface {
	HasTerm(t *term.Term) bool
	// Representative is the canonical member of t's equivalence class.
	Representative(t *term.Term) *term.Term
	AreEqual(a, b *term.Term) bool
	AreDisequal(a, b *term.Term) bool
	// Class lists every registered term equal to t. The order is
	// implementation-defined but stable within one engine state.
	Class(t *term.Term) []*term.Term
}
