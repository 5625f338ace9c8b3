package models

import (
	"slices"
	"time"
)

// Task represents a single card on the kanban board.
// A task belongs to exactly one column's list at any instant; the board store
// is responsible for maintaining that partition.
type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Details       string    `json:"details"`
	Priority      string    `json:"priority"`      // One of the Priority* constants
	PriorityColor string    `json:"priorityColor"` // Derived from Priority at creation
	Rating        float64   `json:"rating"`        // Severity rating in [0, 10]
	Starred       bool      `json:"starred"`
	Labels        []string  `json:"labels"` // Label IDs, set semantics
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	DueDate       string    `json:"dueDate,omitempty"`
}

// HasLabel reports whether the task carries the given label ID.
func (t *Task) HasLabel(labelID string) bool {
	return slices.Contains(t.Labels, labelID)
}

// Clone returns a deep copy of the task. The Labels slice is copied so the
// clone can be mutated without aliasing the original.
func (t *Task) Clone() *Task {
	clone := *t
	clone.Labels = slices.Clone(t.Labels)
	return &clone
}
