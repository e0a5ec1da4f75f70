package term

import (
	"fmt"
	"strconv"
	"strings"
)

type leafKey struct {
	kind Kind
	name string
	sort Sort
}

// Store owns every term it builds. Identical constructor calls return the
// identical *Term, which is what makes pointer identity coincide with
// structural equality. A Store is not safe for concurrent use.
type Store struct {
	nextID uint64
	sorts  map[string]*UserSort
	leaves map[leafKey]*Term
	apps   map[string]*Term
}

func NewStore() *Store {
	return &Store{
		sorts:  make(map[string]*UserSort),
		leaves: make(map[leafKey]*Term),
		apps:   make(map[string]*Term),
	}
}

// DeclareSort interns the uninterpreted sort with the given name.
func (s *Store) DeclareSort(name string) *UserSort {
	if existing, ok := s.sorts[name]; ok {
		return existing
	}
	sort := &UserSort{Name: name}
	s.sorts[name] = sort
	return sort
}

func (s *Store) SortByName(name string) (Sort, bool) {
	switch name {
	case "Bool":
		return BoolSort, true
	case "Int":
		return IntSort, true
	case "Real":
		return RealSort, true
	}
	sort, ok := s.sorts[name]
	if !ok {
		return nil, false
	}
	return sort, true
}

func (s *Store) leaf(kind Kind, name string, sort Sort) *Term {
	key := leafKey{kind: kind, name: name, sort: sort}
	if existing, ok := s.leaves[key]; ok {
		return existing
	}
	t := &Term{id: s.fresh(), kind: kind, op: name, sort: sort}
	s.leaves[key] = t
	return t
}

// Const builds (or returns the interned) nullary constant.
func (s *Store) Const(name string, sort Sort) *Term {
	return s.leaf(KindConst, name, sort)
}

// Value builds an opaque value term, as assigned by a finite model.
func (s *Store) Value(name string, sort Sort) *Term {
	return s.leaf(KindValue, name, sort)
}

// Bound builds a quantifier-bound variable.
func (s *Store) Bound(name string, sort Sort) *Term {
	return s.leaf(KindBound, name, sort)
}

// Apply builds the application of op to children, with the given result
// sort.
func (s *Store) Apply(op string, sort Sort, children ...*Term) *Term {
	key := appKey(KindApply, op, children)
	if existing, ok := s.apps[key]; ok {
		return existing
	}
	t := &Term{
		id:       s.fresh(),
		kind:     KindApply,
		op:       op,
		sort:     sort,
		children: children,
		depth:    1 + maxDepth(children),
	}
	s.apps[key] = t
	return t
}

// LookupApply returns the already-interned application of op to children,
// if any, without creating it.
func (s *Store) LookupApply(op string, children []*Term) (*Term, bool) {
	t, ok := s.apps[appKey(KindApply, op, children)]
	return t, ok
}

// Forall builds a universally quantified formula. Child 0 is the bound
// variable list, child 1 the body.
func (s *Store) Forall(vars []*Term, body *Term) *Term {
	for _, v := range vars {
		if v.kind != KindBound {
			panic(fmt.Sprintf("forall binder is not a bound variable: %v", v))
		}
	}
	varList := s.apps[appKey(KindVarList, "", vars)]
	if varList == nil {
		varList = &Term{id: s.fresh(), kind: KindVarList, sort: BoolSort, children: vars}
		s.apps[appKey(KindVarList, "", vars)] = varList
	}
	children := []*Term{varList, body}
	key := appKey(KindForall, "forall", children)
	if existing, ok := s.apps[key]; ok {
		return existing
	}
	t := &Term{id: s.fresh(), kind: KindForall, op: "forall", sort: BoolSort, children: children}
	s.apps[key] = t
	return t
}

func (s *Store) fresh() uint64 {
	s.nextID++
	return s.nextID
}

func appKey(kind Kind, op string, children []*Term) string {
	sb := strings.Builder{}
	sb.WriteString(strconv.Itoa(int(kind)))
	sb.WriteString(" ")
	sb.WriteString(op)
	for _, c := range children {
		sb.WriteString(" ")
		sb.WriteString(strconv.FormatUint(c.id, 10))
	}
	return sb.String()
}

func maxDepth(children []*Term) int {
	max := 0
	for _, c := range children {
		if c.depth > max {
			max = c.depth
		}
	}
	return max
}

// BoundVarSort is the sort of the index-th bound variable of the forall
// term q. A non-forall q or an out-of-range index is a caller bug.
func BoundVarSort(q *Term, index int) Sort {
	if q.kind != KindForall {
		panic(fmt.Sprintf("not a forall term: %v", q))
	}
	vars := q.children[0]
	if index < 0 || index >= len(vars.children) {
		panic(fmt.Sprintf("bound variable index %d out of range for %v", index, q))
	}
	return vars.children[index].sort
}
