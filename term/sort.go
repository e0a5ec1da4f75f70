package term

// Sort is the semantic type of a term. Sorts are interned: two sorts are
// the same sort exactly when they are the same value, so they are usable
// as map keys.
type Sort interface {
	String() string
	// SubtypeOf reports whether a term of this sort may stand wherever a
	// term of other is expected. The relation is reflexive; the only
	// non-trivial edge is Int <: Real.
	SubtypeOf(other Sort) bool
}

var (
	_ Sort = baseSort("")
	_ Sort = (*UserSort)(nil)
)

type baseSort string

const (
	BoolSort = baseSort("Bool")
	IntSort  = baseSort("Int")
	RealSort = baseSort("Real")
)

func (s baseSort) String() string { return string(s) }

func (s baseSort) SubtypeOf(other Sort) bool {
	if s == other {
		return true
	}
	return s == IntSort && other == RealSort
}

// UserSort is an uninterpreted sort declared by the user. Instances are
// interned by the Store, one per name.
type UserSort struct {
	Name string
}

func (s *UserSort) String() string { return s.Name }

func (s *UserSort) SubtypeOf(other Sort) bool {
	return Sort(s) == other
}
