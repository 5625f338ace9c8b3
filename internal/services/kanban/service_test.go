package kanban

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypejab/triage/internal/board"
	"github.com/hypejab/triage/internal/models"
	"github.com/hypejab/triage/internal/view"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestService(t *testing.T) (Service, *board.Store) {
	t.Helper()
	store := board.NewStore()
	return NewService(store), store
}

func ratingOf(v float64) *float64 {
	return &v
}

// ============================================================================
// TASK CREATION DEFAULTS
// ============================================================================

func TestAddNewTaskAppliesDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	task, err := svc.AddNewTask(models.ColumnDraft, TaskData{})
	require.NoError(t, err)

	assert.Equal(t, "New Task", task.Title)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, "#f97316", task.PriorityColor)
	assert.Equal(t, 8.8, task.Rating)
	assert.False(t, task.Starred)
	assert.NotNil(t, task.Labels)
	assert.Empty(t, task.Labels)
	assert.WithinDuration(t, time.Now(), task.CreatedAt, 5*time.Second)
}

func TestAddNewTaskKeepsCallerFields(t *testing.T) {
	svc, _ := newTestService(t)

	task, err := svc.AddNewTask(models.ColumnDraft, TaskData{
		Title:    "Fix XSS",
		Details:  "reflected in search box",
		Priority: models.PriorityHigh,
		Rating:   ratingOf(7.2),
		Labels:   []string{"security"},
		Starred:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Fix XSS", task.Title)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, "#dc2626", task.PriorityColor)
	assert.Equal(t, 7.2, task.Rating)
	assert.Equal(t, []string{"security"}, task.Labels)
	assert.True(t, task.Starred)
}

func TestAddNewTaskOmittedRatingBecomesDefault(t *testing.T) {
	svc, _ := newTestService(t)

	task, err := svc.AddNewTask(models.ColumnDraft, TaskData{Title: "T"})
	require.NoError(t, err)

	assert.Equal(t, 8.8, task.Rating)
}

func TestAddNewTaskExplicitZeroRatingSurvives(t *testing.T) {
	svc, _ := newTestService(t)

	task, err := svc.AddNewTask(models.ColumnDraft, TaskData{Title: "T", Rating: ratingOf(0)})
	require.NoError(t, err)

	assert.Equal(t, 0.0, task.Rating, "explicit zero rating replaced by the default")
}

func TestAddNewTaskUnknownColumn(t *testing.T) {
	svc, _ := newTestService(t)

	task, err := svc.AddNewTask("missing", TaskData{Title: "T"})
	assert.ErrorIs(t, err, models.ErrColumnNotFound)
	assert.Nil(t, task)
}

func TestAddNewTaskIDsAreUnique(t *testing.T) {
	svc, _ := newTestService(t)

	seen := make(map[string]bool)
	for range 50 {
		task, err := svc.AddNewTask(models.ColumnDraft, TaskData{Title: "T"})
		require.NoError(t, err)
		require.NotEmpty(t, task.ID)
		require.False(t, seen[task.ID], "duplicate task ID %s", task.ID)
		seen[task.ID] = true
	}
}

// ============================================================================
// COLUMN CREATION
// ============================================================================

func TestAddNewColumnAppendsWithNextOrder(t *testing.T) {
	svc, store := newTestService(t)

	col := svc.AddNewColumn(ColumnData{Title: "Backlog"})

	require.NotNil(t, col)
	assert.NotEmpty(t, col.ID)
	assert.Equal(t, "Backlog", col.Title)
	assert.Equal(t, 5, col.Order, "order should equal the prior column count")
	assert.True(t, store.HasColumn(col.ID))
}

func TestAddNewColumnIDsAreUnique(t *testing.T) {
	svc, _ := newTestService(t)

	a := svc.AddNewColumn(ColumnData{Title: "A"})
	b := svc.AddNewColumn(ColumnData{Title: "B"})

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 5, a.Order)
	assert.Equal(t, 6, b.Order)
}

// ============================================================================
// LABEL OPERATIONS
// ============================================================================

func TestAddNewLabel(t *testing.T) {
	svc, store := newTestService(t)

	label := svc.AddNewLabel(LabelData{Name: "Urgent", Color: "#ff0000"})

	require.NotNil(t, label)
	assert.NotEmpty(t, label.ID)
	assert.True(t, store.HasLabel(label.ID))
}

func TestAttachDetachLabel(t *testing.T) {
	svc, store := newTestService(t)
	task, err := svc.AddNewTask(models.ColumnDraft, TaskData{Title: "T"})
	require.NoError(t, err)

	require.NoError(t, svc.AttachLabel(task.ID, "bug"))
	assert.True(t, store.Tasks()[models.ColumnDraft][0].HasLabel("bug"))

	require.NoError(t, svc.DetachLabel(task.ID, "bug"))
	assert.False(t, store.Tasks()[models.ColumnDraft][0].HasLabel("bug"))
}

func TestRemoveLabelStripsFromTasks(t *testing.T) {
	svc, store := newTestService(t)
	task, err := svc.AddNewTask(models.ColumnDraft, TaskData{Title: "T", Labels: []string{"bug"}})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveLabel("bug"))

	assert.False(t, store.HasLabel("bug"))
	assert.False(t, store.Tasks()[models.ColumnDraft][0].HasLabel("bug"), "task %s kept removed label", task.ID)
}

// ============================================================================
// FILTERS
// ============================================================================

func TestUpdateFiltersMergesPatch(t *testing.T) {
	svc, _ := newTestService(t)

	search := "xss"
	svc.UpdateFilters(view.CriteriaPatch{Search: &search})
	sortKey := view.SortPriority
	svc.UpdateFilters(view.CriteriaPatch{Sort: &sortKey})

	got := svc.Filters()
	assert.Equal(t, "xss", got.Search, "earlier patch field lost")
	assert.Equal(t, view.SortPriority, got.Sort)
}

func TestTasksReflectActiveFilters(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.AddNewTask(models.ColumnDraft, TaskData{Title: "Fix XSS"})
	require.NoError(t, err)
	_, err = svc.AddNewTask(models.ColumnDraft, TaskData{Title: "Refactor"})
	require.NoError(t, err)

	search := "xss"
	svc.UpdateFilters(view.CriteriaPatch{Search: &search})

	assert.Len(t, svc.Tasks()[models.ColumnDraft], 1)
	assert.Len(t, svc.RawTasks()[models.ColumnDraft], 2, "RawTasks must ignore filters")
}

func TestFiltersReturnsCopy(t *testing.T) {
	svc, _ := newTestService(t)
	labels := []string{"bug"}
	svc.UpdateFilters(view.CriteriaPatch{Labels: &labels})

	got := svc.Filters()
	got.Labels[0] = "mutated"

	assert.Equal(t, []string{"bug"}, svc.Filters().Labels)
}
