package view

import "slices"

// Sort keys accepted by the engine. The bare key sorts in its natural
// direction for the board (newest/highest first for date, priority, rating;
// A→Z for title); the suffixed variant flips it.
const (
	SortDate        = "date"
	SortDateAsc     = "date-asc"
	SortPriority    = "priority"
	SortPriorityAsc = "priority-asc"
	SortTitle       = "title"
	SortTitleDesc   = "title-desc"
	SortRating      = "rating"
	SortRatingAsc   = "rating-asc"
)

// Criteria is the ephemeral, UI-driven filter and sort configuration.
// It is not board data and is never persisted with the snapshot.
//
// Labels is always a set of label IDs with match-any semantics; an empty set
// means no label filtering. Single-label selection is a one-element set.
type Criteria struct {
	Search   string
	Labels   []string
	Priority string
	Sort     string
}

// Equal reports whether two criteria are identical, including label order.
func (c Criteria) Equal(other Criteria) bool {
	return c.Search == other.Search &&
		c.Priority == other.Priority &&
		c.Sort == other.Sort &&
		slices.Equal(c.Labels, other.Labels)
}

// Clone returns a copy that does not alias the Labels slice.
func (c Criteria) Clone() Criteria {
	c.Labels = slices.Clone(c.Labels)
	return c
}

// CriteriaPatch is a partial criteria update; nil fields are left alone.
type CriteriaPatch struct {
	Search   *string
	Labels   *[]string
	Priority *string
	Sort     *string
}

// Apply merges the patch into the criteria and returns the result.
func (p CriteriaPatch) Apply(c Criteria) Criteria {
	if p.Search != nil {
		c.Search = *p.Search
	}
	if p.Labels != nil {
		c.Labels = slices.Clone(*p.Labels)
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.Sort != nil {
		c.Sort = *p.Sort
	}
	return c
}
