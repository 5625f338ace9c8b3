package board

import "github.com/hypejab/triage/internal/models"

// Patch types for the store's merge-style edits. Pointer fields are optional:
// nil means leave the current value alone. This mirrors the service-request
// convention used across the codebase.

// ColumnPatch is a partial column update.
type ColumnPatch struct {
	Title *string
	Order *int
}

func (p ColumnPatch) apply(col *models.Column) {
	if p.Title != nil {
		col.Title = *p.Title
	}
	if p.Order != nil {
		col.Order = *p.Order
	}
}

// TaskPatch is a partial task update. The task's ID, CreatedAt, and column
// membership are not patchable; moves go through Store.MoveTask.
type TaskPatch struct {
	Title         *string
	Details       *string
	Priority      *string
	PriorityColor *string
	Rating        *float64
	Starred       *bool
	Labels        *[]string
	Status        *string
	DueDate       *string
}

func (p TaskPatch) apply(task *models.Task) {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Details != nil {
		task.Details = *p.Details
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
	if p.PriorityColor != nil {
		task.PriorityColor = *p.PriorityColor
	}
	if p.Rating != nil {
		task.Rating = *p.Rating
	}
	if p.Starred != nil {
		task.Starred = *p.Starred
	}
	if p.Labels != nil {
		task.Labels = *p.Labels
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.DueDate != nil {
		task.DueDate = *p.DueDate
	}
}

// LabelPatch is a partial label update.
type LabelPatch struct {
	Name  *string
	Color *string
}

func (p LabelPatch) apply(label *models.Label) {
	if p.Name != nil {
		label.Name = *p.Name
	}
	if p.Color != nil {
		label.Color = *p.Color
	}
}
