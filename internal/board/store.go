// Package board holds the canonical kanban board state and performs atomic
// mutations on it. The store is the single source of truth: an ordered column
// list, a per-column task list, and the label set.
//
// Mutations are synchronous and tolerant: a missing target ID yields a typed
// not-found error that callers may ignore, and state is never touched before
// the target is resolved. The store performs no input validation; that is the
// job of the form boundary (internal/validate) in front of the service layer.
//
// The store is single-threaded by construction, matching the rest of the
// application. Callers running on multiple goroutines must serialize access
// themselves.
package board

import (
	"slices"
	"strings"

	"github.com/hypejab/triage/internal/models"
)

// Store owns the normalized board state. Construct with NewStore; there is no
// package-level instance, and tests create a fresh store each.
type Store struct {
	columns []models.Column
	tasks   map[string][]*models.Task
	labels  []models.Label

	subscribers []func()
	generation  uint64
}

// NewStore returns a store initialized with the default board: the five fixed
// columns, the fixed label set, and no tasks.
func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

// Subscribe registers fn to be called after every successful mutation.
// The persistence bridge uses this to snapshot the board; subscribers must
// not mutate the store from within the callback.
func (s *Store) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

// Generation returns a counter that increments on every successful mutation.
// Derived views use it as a cheap cache key.
func (s *Store) Generation() uint64 {
	return s.generation
}

func (s *Store) notify() {
	s.generation++
	for _, fn := range s.subscribers {
		fn()
	}
}

// ============================================================================
// ACCESSORS
// ============================================================================

// Columns returns a copy of the column list in insertion order.
func (s *Store) Columns() []models.Column {
	return slices.Clone(s.columns)
}

// Labels returns a copy of the label list.
func (s *Store) Labels() []models.Label {
	return slices.Clone(s.labels)
}

// Tasks returns the per-column task lists. The map and slices are fresh so
// callers cannot reorder the store's state, but the *Task values are shared:
// treat them as read-only.
func (s *Store) Tasks() map[string][]*models.Task {
	out := make(map[string][]*models.Task, len(s.tasks))
	for columnID, list := range s.tasks {
		out[columnID] = slices.Clone(list)
	}
	return out
}

// HasColumn reports whether a column with the given ID exists.
func (s *Store) HasColumn(id string) bool {
	return s.columnIndex(id) >= 0
}

// HasTask reports whether a task with the given ID exists in any column.
func (s *Store) HasTask(id string) bool {
	_, _, task := s.findTask(id)
	return task != nil
}

// HasLabel reports whether a label with the given ID exists.
func (s *Store) HasLabel(id string) bool {
	return s.labelIndex(id) >= 0
}

// HasColumnTitle reports whether any column already uses the given title,
// compared case-insensitively. Used by the form boundary for uniqueness.
func (s *Store) HasColumnTitle(title string) bool {
	for _, col := range s.columns {
		if strings.EqualFold(col.Title, title) {
			return true
		}
	}
	return false
}

// HasLabelName reports whether any label already uses the given name,
// compared case-insensitively.
func (s *Store) HasLabelName(name string) bool {
	for _, label := range s.labels {
		if strings.EqualFold(label.Name, name) {
			return true
		}
	}
	return false
}

func (s *Store) columnIndex(id string) int {
	return slices.IndexFunc(s.columns, func(c models.Column) bool { return c.ID == id })
}

func (s *Store) labelIndex(id string) int {
	return slices.IndexFunc(s.labels, func(l models.Label) bool { return l.ID == id })
}

// findTask scans all column lists for the first task matching id.
// IDs are globally unique, so first match is the only match.
func (s *Store) findTask(id string) (columnID string, index int, task *models.Task) {
	for _, col := range s.columns {
		for i, t := range s.tasks[col.ID] {
			if t.ID == id {
				return col.ID, i, t
			}
		}
	}
	return "", -1, nil
}

// ============================================================================
// COLUMN MUTATIONS
// ============================================================================

// AddColumn appends a column and initializes its empty task list.
// The caller supplies a unique ID; the store does not check.
func (s *Store) AddColumn(col models.Column) {
	s.columns = append(s.columns, col)
	s.tasks[col.ID] = nil
	s.notify()
}

// EditColumn merges the patch into the column matching id.
func (s *Store) EditColumn(id string, patch ColumnPatch) error {
	idx := s.columnIndex(id)
	if idx < 0 {
		return models.ErrColumnNotFound
	}
	patch.apply(&s.columns[idx])
	s.notify()
	return nil
}

// DeleteColumn removes the column and discards its entire task list.
// Tasks are lost, not relocated; callers wanting move-then-delete semantics
// call MoveAllTasksToColumn first.
func (s *Store) DeleteColumn(id string) error {
	idx := s.columnIndex(id)
	if idx < 0 {
		return models.ErrColumnNotFound
	}
	s.columns = slices.Delete(s.columns, idx, idx+1)
	delete(s.tasks, id)
	s.notify()
	return nil
}

// DeleteColumnWithTasks removes a column and its tasks. Identical to
// DeleteColumn; the distinct name makes intentional task loss explicit at
// call sites.
func (s *Store) DeleteColumnWithTasks(id string) error {
	return s.DeleteColumn(id)
}

// MoveAllTasksToColumn appends the source column's entire task list onto the
// destination's and empties the source. Moving a column onto itself is a no-op.
func (s *Store) MoveAllTasksToColumn(fromID, toID string) error {
	if !s.HasColumn(fromID) || !s.HasColumn(toID) {
		return models.ErrColumnNotFound
	}
	if fromID == toID {
		return nil
	}
	s.tasks[toID] = append(s.tasks[toID], s.tasks[fromID]...)
	s.tasks[fromID] = nil
	s.notify()
	return nil
}

// ============================================================================
// TASK MUTATIONS
// ============================================================================

// AddTask appends the task to the named column's list.
func (s *Store) AddTask(columnID string, task *models.Task) error {
	if !s.HasColumn(columnID) {
		return models.ErrColumnNotFound
	}
	s.tasks[columnID] = append(s.tasks[columnID], task)
	s.notify()
	return nil
}

// EditTask merges the patch into the task matching id, wherever it lives.
func (s *Store) EditTask(id string, patch TaskPatch) error {
	_, _, task := s.findTask(id)
	if task == nil {
		return models.ErrTaskNotFound
	}
	patch.apply(task)
	s.notify()
	return nil
}

// DeleteTask removes the task from whichever column list contains it.
func (s *Store) DeleteTask(id string) error {
	columnID, idx, task := s.findTask(id)
	if task == nil {
		return models.ErrTaskNotFound
	}
	s.tasks[columnID] = slices.Delete(s.tasks[columnID], idx, idx+1)
	s.notify()
	return nil
}

// MoveTask removes the task from its current column and appends it to the
// target column's list, preserving the task object unchanged. Both task and
// target column are resolved before any list is touched, so a failed move
// never loses or duplicates the task.
func (s *Store) MoveTask(taskID, targetColumnID string) error {
	columnID, idx, task := s.findTask(taskID)
	if task == nil {
		return models.ErrTaskNotFound
	}
	if !s.HasColumn(targetColumnID) {
		return models.ErrColumnNotFound
	}
	s.tasks[columnID] = slices.Delete(s.tasks[columnID], idx, idx+1)
	s.tasks[targetColumnID] = append(s.tasks[targetColumnID], task)
	s.notify()
	return nil
}

// ============================================================================
// LABEL MUTATIONS
// ============================================================================

// AddLabel appends a label. The caller supplies a unique ID.
func (s *Store) AddLabel(label models.Label) {
	s.labels = append(s.labels, label)
	s.notify()
}

// EditLabel merges the patch into the label matching id.
func (s *Store) EditLabel(id string, patch LabelPatch) error {
	idx := s.labelIndex(id)
	if idx < 0 {
		return models.ErrLabelNotFound
	}
	patch.apply(&s.labels[idx])
	s.notify()
	return nil
}

// DeleteLabel removes the label and cascades: the label ID is stripped from
// every task's label list across all columns, so no dangling references
// remain.
func (s *Store) DeleteLabel(id string) error {
	idx := s.labelIndex(id)
	if idx < 0 {
		return models.ErrLabelNotFound
	}
	s.labels = slices.Delete(s.labels, idx, idx+1)
	for columnID := range s.tasks {
		for _, task := range s.tasks[columnID] {
			task.Labels = slices.DeleteFunc(task.Labels, func(labelID string) bool {
				return labelID == id
			})
		}
	}
	s.notify()
	return nil
}

// AddLabelToTask attaches the label ID to the task. Idempotent: attaching an
// already-present label is a successful no-op.
func (s *Store) AddLabelToTask(taskID, labelID string) error {
	_, _, task := s.findTask(taskID)
	if task == nil {
		return models.ErrTaskNotFound
	}
	if !task.HasLabel(labelID) {
		task.Labels = append(task.Labels, labelID)
	}
	s.notify()
	return nil
}

// RemoveLabelFromTask detaches the label ID from the task.
func (s *Store) RemoveLabelFromTask(taskID, labelID string) error {
	_, _, task := s.findTask(taskID)
	if task == nil {
		return models.ErrTaskNotFound
	}
	task.Labels = slices.DeleteFunc(task.Labels, func(id string) bool {
		return id == labelID
	})
	s.notify()
	return nil
}

// ============================================================================
// SNAPSHOT / LIFECYCLE
// ============================================================================

// LoadSnapshot wholesale-replaces the store state from a persisted snapshot.
// Used at session start and on user switch. The snapshot is deep-copied in;
// afterwards the task map holds exactly one list per column: missing lists
// are created, and lists keyed by an unknown column ID are dropped so a
// stale snapshot cannot smuggle in unrendered orphan tasks.
func (s *Store) LoadSnapshot(snap Snapshot) {
	clone := snap.Clone()
	s.columns = clone.Columns
	s.labels = clone.Labels
	s.tasks = make(map[string][]*models.Task, len(s.columns))
	for _, col := range s.columns {
		s.tasks[col.ID] = clone.Tasks[col.ID]
	}
	s.notify()
}

// ResetToDefaults replaces state with the fixed initial columns and labels
// and empty task lists. Used at logout and when no snapshot exists.
func (s *Store) ResetToDefaults() {
	s.reset()
	s.notify()
}

func (s *Store) reset() {
	s.columns = models.DefaultColumns()
	s.labels = models.DefaultLabels()
	s.tasks = make(map[string][]*models.Task, len(s.columns))
	for _, col := range s.columns {
		s.tasks[col.ID] = nil
	}
}

// Snapshot returns a deep copy of the full board state, suitable for
// serialization. Mutating the returned snapshot does not affect the store.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Columns: slices.Clone(s.columns),
		Tasks:   make(map[string][]*models.Task, len(s.tasks)),
		Labels:  slices.Clone(s.labels),
	}
	for columnID, list := range s.tasks {
		cloned := make([]*models.Task, len(list))
		for i, task := range list {
			cloned[i] = task.Clone()
		}
		snap.Tasks[columnID] = cloned
	}
	return snap
}
