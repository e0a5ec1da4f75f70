package term

import (
	"github.com/no-preserve-root/quanteq/util"
)

// Database tracks, on top of a Store, the side-channel metadata the
// instantiation machinery attaches to terms: which terms are current in
// the active assertions, which were produced by instantiation and at what
// level, and which belong to the instantiation closure. Terms themselves
// stay immutable; all flags live here, keyed by term identity.
type Database struct {
	store       *Store
	current     util.MSet[*Term]
	instClosure util.MSet[*Term]
	instConst   util.MSet[*Term]
	instLevel   map[*Term]int
}

func NewDatabase(store *Store) *Database {
	return &Database{
		store:       store,
		current:     util.NewEmptySet[*Term](),
		instClosure: util.NewEmptySet[*Term](),
		instConst:   util.NewEmptySet[*Term](),
		instLevel:   make(map[*Term]int),
	}
}

func (d *Database) Store() *Store { return d.store }

// Register marks t and all its subterms as current in the active
// assertion set.
func (d *Database) Register(t *Term) {
	if d.current.Contains(t) {
		return
	}
	d.current.Add(t)
	for _, c := range t.Children() {
		d.Register(c)
	}
}

func (d *Database) HasTermCurrent(t *Term) bool {
	return d.current.Contains(t)
}

// CongruentTerm returns the registered application of op to exactly args,
// if one exists.
func (d *Database) CongruentTerm(op string, args []*Term) (*Term, bool) {
	t, ok := d.store.LookupApply(op, args)
	if !ok || !d.current.Contains(t) {
		return nil, false
	}
	return t, true
}

func (d *Database) MarkInstClosure(t *Term) { d.instClosure.Add(t) }
func (d *Database) IsInstClosure(t *Term) bool {
	return d.instClosure.Contains(t)
}

// MarkInstConstant flags t as containing an instantiation constant, i.e.
// a placeholder introduced for counterexample-guided instantiation.
func (d *Database) MarkInstConstant(t *Term) { d.instConst.Add(t) }
func (d *Database) HasInstConstant(t *Term) bool {
	return d.instConst.Contains(t)
}

// SetInstLevel records the instantiation round that produced t. Input
// terms have no level.
func (d *Database) SetInstLevel(t *Term, level int) { d.instLevel[t] = level }

func (d *Database) InstLevel(t *Term) (int, bool) {
	level, ok := d.instLevel[t]
	return level, ok
}
