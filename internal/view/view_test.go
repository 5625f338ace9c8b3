package view

import (
	"testing"
	"time"

	"github.com/hypejab/triage/internal/board"
	"github.com/hypejab/triage/internal/models"
)

func seedStore(t *testing.T) *board.Store {
	t.Helper()
	s := board.NewStore()
	for i, title := range []string{"Alpha", "Beta"} {
		task := &models.Task{
			ID:        title,
			Title:     title,
			Priority:  models.PriorityMedium,
			Labels:    []string{},
			CreatedAt: time.Date(2026, 3, 1, 12, i, 0, 0, time.UTC),
		}
		if err := s.AddTask(models.ColumnDraft, task); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestViewReturnsCachedResultWhenUnchanged(t *testing.T) {
	v := NewView(seedStore(t))
	criteria := Criteria{Sort: SortTitle}

	first := v.Tasks(criteria)
	second := v.Tasks(criteria)

	// Same map instance: no re-derivation happened
	first["marker"] = nil
	if _, ok := second["marker"]; !ok {
		t.Error("second call re-derived despite unchanged store and criteria")
	}
	delete(first, "marker")
}

func TestViewRecomputesAfterMutation(t *testing.T) {
	s := seedStore(t)
	v := NewView(s)
	criteria := Criteria{}

	before := v.Tasks(criteria)
	if len(before[models.ColumnDraft]) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(before[models.ColumnDraft]))
	}

	if err := s.DeleteTask("Alpha"); err != nil {
		t.Fatal(err)
	}

	after := v.Tasks(criteria)
	if len(after[models.ColumnDraft]) != 1 {
		t.Errorf("view did not recompute after mutation: %d tasks", len(after[models.ColumnDraft]))
	}
}

func TestViewRecomputesOnCriteriaChange(t *testing.T) {
	v := NewView(seedStore(t))

	all := v.Tasks(Criteria{})
	filtered := v.Tasks(Criteria{Search: "alpha"})

	if len(all[models.ColumnDraft]) != 2 {
		t.Errorf("unfiltered view wrong: %d", len(all[models.ColumnDraft]))
	}
	if len(filtered[models.ColumnDraft]) != 1 {
		t.Errorf("filtered view wrong: %d", len(filtered[models.ColumnDraft]))
	}
}

func TestViewCacheKeyIncludesLabelSet(t *testing.T) {
	s := seedStore(t)
	if err := s.AddLabelToTask("Alpha", "bug"); err != nil {
		t.Fatal(err)
	}
	v := NewView(s)

	first := v.Tasks(Criteria{Labels: []string{"bug"}})
	second := v.Tasks(Criteria{Labels: []string{"security"}})

	if len(first[models.ColumnDraft]) != 1 {
		t.Errorf("bug filter wrong: %d", len(first[models.ColumnDraft]))
	}
	if len(second[models.ColumnDraft]) != 0 {
		t.Errorf("security filter served stale cache: %d", len(second[models.ColumnDraft]))
	}
}
