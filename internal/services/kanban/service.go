// Package kanban is the mutation façade for the board: the only surface the
// outer layers (CLI, forms) call. It translates caller intent into store
// mutations, synthesizing IDs and filling default field values.
//
// The façade performs no input validation of its own; that sits with
// internal/validate at the form boundary. The façade and store accept what
// they are handed and trust the caller.
package kanban

import (
	"time"

	"github.com/hypejab/triage/internal/board"
	"github.com/hypejab/triage/internal/models"
	"github.com/hypejab/triage/internal/view"
)

// Service defines all board-facing business operations.
type Service interface {
	// Read operations
	Columns() []models.Column
	Labels() []models.Label
	Tasks() map[string][]*models.Task    // filtered and sorted per active criteria
	RawTasks() map[string][]*models.Task // unfiltered, for internal operations

	// Column operations
	AddNewColumn(data ColumnData) *models.Column
	UpdateColumn(id string, patch board.ColumnPatch) error
	RemoveColumn(id string) error
	RemoveColumnWithTasks(id string) error
	MoveAllTasksToColumn(fromID, toID string) error

	// Task operations
	AddNewTask(columnID string, data TaskData) (*models.Task, error)
	UpdateTask(id string, patch board.TaskPatch) error
	RemoveTask(id string) error
	MoveTaskToColumn(taskID, columnID string) error

	// Label operations
	AddNewLabel(data LabelData) *models.Label
	UpdateLabel(id string, patch board.LabelPatch) error
	RemoveLabel(id string) error
	AttachLabel(taskID, labelID string) error
	DetachLabel(taskID, labelID string) error

	// Filter criteria (UI-facing, not board data)
	UpdateFilters(patch view.CriteriaPatch)
	Filters() view.Criteria
}

// ColumnData carries caller-supplied fields for a new column.
type ColumnData struct {
	Title string
}

// TaskData carries caller-supplied fields for a new task. Omitted fields are
// replaced with board defaults: empty title becomes "New Task", empty
// priority becomes Medium, nil rating becomes 8.8. Rating is a pointer so an
// explicit zero survives.
type TaskData struct {
	Title    string
	Details  string
	Labels   []string
	Priority string
	Rating   *float64
	Starred  bool
	Status   string
	DueDate  string
}

// LabelData carries caller-supplied fields for a new label.
type LabelData struct {
	Name  string
	Color string
}

type service struct {
	store    *board.Store
	view     *view.View
	criteria view.Criteria
}

// NewService creates the board service around a store.
func NewService(store *board.Store) Service {
	return &service{
		store: store,
		view:  view.NewView(store),
	}
}

// ============================================================================
// READ OPERATIONS
// ============================================================================

func (s *service) Columns() []models.Column {
	return s.store.Columns()
}

func (s *service) Labels() []models.Label {
	return s.store.Labels()
}

// Tasks returns the derived per-column task lists under the live criteria.
func (s *service) Tasks() map[string][]*models.Task {
	return s.view.Tasks(s.criteria)
}

func (s *service) RawTasks() map[string][]*models.Task {
	return s.store.Tasks()
}

// ============================================================================
// COLUMN OPERATIONS
// ============================================================================

// AddNewColumn synthesizes a unique ID, sets the display order to the current
// column count, and appends the column.
func (s *service) AddNewColumn(data ColumnData) *models.Column {
	col := models.Column{
		ID:    s.newColumnID(),
		Title: data.Title,
		Order: len(s.store.Columns()),
	}
	s.store.AddColumn(col)
	return &col
}

func (s *service) UpdateColumn(id string, patch board.ColumnPatch) error {
	return s.store.EditColumn(id, patch)
}

func (s *service) RemoveColumn(id string) error {
	return s.store.DeleteColumn(id)
}

func (s *service) RemoveColumnWithTasks(id string) error {
	return s.store.DeleteColumnWithTasks(id)
}

func (s *service) MoveAllTasksToColumn(fromID, toID string) error {
	return s.store.MoveAllTasksToColumn(fromID, toID)
}

// ============================================================================
// TASK OPERATIONS
// ============================================================================

// AddNewTask fills defaults for omitted fields, derives the priority color,
// and appends the task to the named column.
func (s *service) AddNewTask(columnID string, data TaskData) (*models.Task, error) {
	title := data.Title
	if title == "" {
		title = models.DefaultTaskTitle
	}
	priority := data.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	rating := models.DefaultRating
	if data.Rating != nil {
		rating = *data.Rating
	}
	labels := data.Labels
	if labels == nil {
		labels = []string{}
	}

	task := &models.Task{
		ID:            s.newTaskID(),
		Title:         title,
		Details:       data.Details,
		Priority:      priority,
		PriorityColor: models.PriorityColor(priority),
		Rating:        rating,
		Starred:       data.Starred,
		Labels:        labels,
		Status:        data.Status,
		CreatedAt:     time.Now(),
		DueDate:       data.DueDate,
	}

	if err := s.store.AddTask(columnID, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *service) UpdateTask(id string, patch board.TaskPatch) error {
	return s.store.EditTask(id, patch)
}

func (s *service) RemoveTask(id string) error {
	return s.store.DeleteTask(id)
}

func (s *service) MoveTaskToColumn(taskID, columnID string) error {
	return s.store.MoveTask(taskID, columnID)
}

// ============================================================================
// LABEL OPERATIONS
// ============================================================================

// AddNewLabel synthesizes a unique ID and appends the label.
func (s *service) AddNewLabel(data LabelData) *models.Label {
	label := models.Label{
		ID:    s.newLabelID(),
		Name:  data.Name,
		Color: data.Color,
	}
	s.store.AddLabel(label)
	return &label
}

func (s *service) UpdateLabel(id string, patch board.LabelPatch) error {
	return s.store.EditLabel(id, patch)
}

func (s *service) RemoveLabel(id string) error {
	return s.store.DeleteLabel(id)
}

func (s *service) AttachLabel(taskID, labelID string) error {
	return s.store.AddLabelToTask(taskID, labelID)
}

func (s *service) DetachLabel(taskID, labelID string) error {
	return s.store.RemoveLabelFromTask(taskID, labelID)
}

// ============================================================================
// FILTER CRITERIA
// ============================================================================

// UpdateFilters merges the patch into the live criteria.
func (s *service) UpdateFilters(patch view.CriteriaPatch) {
	s.criteria = patch.Apply(s.criteria)
}

func (s *service) Filters() view.Criteria {
	return s.criteria.Clone()
}
