package board

import (
	"slices"

	"github.com/hypejab/triage/internal/models"
)

// Snapshot is the full serialized board state for one user: columns, the
// per-column task lists, and labels. This is the exact JSON shape the
// persistence bridge writes to the key-value store.
type Snapshot struct {
	Columns []models.Column           `json:"columns"`
	Tasks   map[string][]*models.Task `json:"tasks"`
	Labels  []models.Label            `json:"labels"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	clone := Snapshot{
		Columns: slices.Clone(s.Columns),
		Labels:  slices.Clone(s.Labels),
	}
	if s.Tasks != nil {
		clone.Tasks = make(map[string][]*models.Task, len(s.Tasks))
		for columnID, list := range s.Tasks {
			tasks := make([]*models.Task, len(list))
			for i, task := range list {
				tasks[i] = task.Clone()
			}
			clone.Tasks[columnID] = tasks
		}
	}
	return clone
}

// Usable reports whether a restored snapshot carries a plausible board.
// A snapshot without columns is treated as corrupt and the caller falls
// back to the default board.
func (s Snapshot) Usable() bool {
	return len(s.Columns) > 0
}
