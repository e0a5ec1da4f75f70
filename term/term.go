package term

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

type Kind uint8

const (
	_ Kind = iota
	// KindConst is a declared constant (a nullary input symbol)
	KindConst
	// KindValue is an opaque value, typically assigned by a finite model
	KindValue
	// KindBound is a variable bound by an enclosing quantifier
	KindBound
	KindApply
	KindForall
	// KindVarList is the bound-variable list child of a KindForall term
	KindVarList
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindValue:
		return "value"
	case KindBound:
		return "bound"
	case KindApply:
		return "apply"
	case KindForall:
		return "forall"
	case KindVarList:
		return "var-list"
	default:
		return "invalid"
	}
}

// Term is an immutable, hash-consed DAG node owned by a Store. Two terms
// built through the same Store are structurally equal exactly when they
// are pointer-equal, so *Term is usable as a map key.
type Term struct {
	id       uint64
	kind     Kind
	op       string
	sort     Sort
	children []*Term
	depth    int
}

func (t *Term) ID() uint64    { return t.id }
func (t *Term) Kind() Kind    { return t.kind }
func (t *Term) Sort() Sort    { return t.sort }
func (t *Term) Op() string    { return t.op }
func (t *Term) IsValue() bool { return t.kind == KindValue }

// IsConstant reports whether t is a concrete value: a value leaf, or an
// application built entirely from values (a composite model value).
func (t *Term) IsConstant() bool {
	switch t.kind {
	case KindValue:
		return true
	case KindApply:
		for _, c := range t.children {
			if !c.IsConstant() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (t *Term) NumChildren() int  { return len(t.children) }
func (t *Term) Child(i int) *Term { return t.children[i] }
func (t *Term) Children() []*Term { return t.children }

// Depth is the number of nested applications above the deepest leaf;
// leaves have depth 0.
func (t *Term) Depth() int { return t.depth }

func (t *Term) String() string {
	switch t.kind {
	case KindConst, KindValue, KindBound:
		return t.op
	case KindForall:
		sb := strings.Builder{}
		sb.WriteString("(forall (")
		for i, v := range t.children[0].children {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString("(" + v.op + " " + v.sort.String() + ")")
		}
		sb.WriteString(") ")
		sb.WriteString(t.children[1].String())
		sb.WriteString(")")
		return sb.String()
	default:
		sb := strings.Builder{}
		sb.WriteString("(" + t.op)
		for _, c := range t.children {
			sb.WriteString(" " + c.String())
		}
		sb.WriteString(")")
		return sb.String()
	}
}

// ContainsUserValue reports whether some subterm of t is an opaque value
// of an uninterpreted sort, i.e. a value that can only have been produced
// by a finite model.
func ContainsUserValue(t *Term) bool {
	if t.kind == KindValue {
		_, user := t.sort.(*UserSort)
		return user
	}
	for _, c := range t.children {
		if ContainsUserValue(c) {
			return true
		}
	}
	return false
}

// Hasher hashes terms by identity, for use with util/hset and
// immutable collections.
type Hasher struct{}

func (Hasher) Hash(t *Term) uint32 {
	h := fnv.New32a()
	arr := binary.LittleEndian.AppendUint64(nil, t.id)
	_, _ = h.Write(arr)
	return h.Sum32()
}

func (Hasher) Equal(a, b *Term) bool { return a == b }
