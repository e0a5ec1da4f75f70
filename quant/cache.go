package quant

import (
	"github.com/no-preserve-root/quanteq/term"
)

// repCache maps (variable sort, raw representative) to the chosen
// internal representative. It is wiped wholesale on Invalidate; entries
// never survive a generation boundary.
type repCache struct {
	bySort map[term.Sort]map[*term.Term]*term.Term
}

func newRepCache() repCache {
	return repCache{bySort: make(map[term.Sort]map[*term.Term]*term.Term)}
}

func (c repCache) lookup(sort term.Sort, rep *term.Term) (*term.Term, bool) {
	chosen, ok := c.bySort[sort][rep]
	return chosen, ok
}

func (c repCache) store(sort term.Sort, rep, chosen *term.Term) {
	forSort, ok := c.bySort[sort]
	if !ok {
		forSort = make(map[*term.Term]*term.Term)
		c.bySort[sort] = forSort
	}
	forSort[rep] = chosen
}

func (c repCache) clear() {
	for sort := range c.bySort {
		delete(c.bySort, sort)
	}
}
