package view

import (
	"github.com/hypejab/triage/internal/board"
	"github.com/hypejab/triage/internal/models"
)

// View memoizes the derived task lists for a store. The cache key is the
// store's mutation generation plus the criteria; correctness does not depend
// on the cache, it only avoids re-deriving on unchanged reads.
type View struct {
	store *board.Store

	cached     map[string][]*models.Task
	cachedGen  uint64
	cachedCrit Criteria
	valid      bool
}

// NewView wraps a store with a memoizing derivation.
func NewView(store *board.Store) *View {
	return &View{store: store}
}

// Tasks returns the derived task lists for the given criteria, recomputing
// only when the board or the criteria changed since the last call.
func (v *View) Tasks(criteria Criteria) map[string][]*models.Task {
	gen := v.store.Generation()
	if v.valid && v.cachedGen == gen && v.cachedCrit.Equal(criteria) {
		return v.cached
	}

	v.cached = Apply(v.store.Tasks(), criteria)
	v.cachedGen = gen
	v.cachedCrit = criteria.Clone()
	v.valid = true
	return v.cached
}
