// Package view derives the visible, ordered task list per column from the raw
// board state and the active filter criteria. The derivation is a pure
// function: it never mutates its inputs, and recomputing with identical
// inputs yields a deep-equal result.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hypejab/triage/internal/models"
)

// Apply derives the filtered, sorted task list for every column.
// Stages run in a fixed order per column: search, label filter, priority
// filter, then a stable sort. The returned map and slices are fresh; the
// input lists are never reordered or shrunk.
func Apply(tasks map[string][]*models.Task, criteria Criteria) map[string][]*models.Task {
	// One collator per derivation; collators are cheap but not goroutine-safe.
	titleCollator := collate.New(language.Und)

	result := make(map[string][]*models.Task, len(tasks))
	for columnID, list := range tasks {
		result[columnID] = applyColumn(list, criteria, titleCollator)
	}
	return result
}

func applyColumn(tasks []*models.Task, criteria Criteria, titleCollator *collate.Collator) []*models.Task {
	filtered := make([]*models.Task, 0, len(tasks))
	search := strings.ToLower(criteria.Search)

	for _, task := range tasks {
		if search != "" && !matchesSearch(task, search) {
			continue
		}
		if len(criteria.Labels) > 0 && !matchesAnyLabel(task, criteria.Labels) {
			continue
		}
		if criteria.Priority != "" && task.Priority != criteria.Priority {
			continue
		}
		filtered = append(filtered, task)
	}

	sortTasks(filtered, criteria.Sort, titleCollator)
	return filtered
}

// matchesSearch reports whether the lowercased search string appears in the
// task's title or details.
func matchesSearch(task *models.Task, search string) bool {
	return strings.Contains(strings.ToLower(task.Title), search) ||
		strings.Contains(strings.ToLower(task.Details), search)
}

// matchesAnyLabel reports whether the task carries at least one of the
// selected label IDs (match-any set intersection).
func matchesAnyLabel(task *models.Task, labelIDs []string) bool {
	for _, id := range labelIDs {
		if task.HasLabel(id) {
			return true
		}
	}
	return false
}

// sortTasks stable-sorts in place by the given key; ties keep their prior
// relative order. An empty or unknown key leaves the list in insertion order.
func sortTasks(tasks []*models.Task, key string, titleCollator *collate.Collator) {
	var less func(a, b *models.Task) bool

	switch key {
	case SortDate:
		less = func(a, b *models.Task) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortDateAsc:
		less = func(a, b *models.Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortPriority:
		less = func(a, b *models.Task) bool {
			return models.PriorityRank(a.Priority) > models.PriorityRank(b.Priority)
		}
	case SortPriorityAsc:
		less = func(a, b *models.Task) bool {
			return models.PriorityRank(a.Priority) < models.PriorityRank(b.Priority)
		}
	case SortTitle:
		less = func(a, b *models.Task) bool {
			return titleCollator.CompareString(a.Title, b.Title) < 0
		}
	case SortTitleDesc:
		less = func(a, b *models.Task) bool {
			return titleCollator.CompareString(a.Title, b.Title) > 0
		}
	case SortRating:
		less = func(a, b *models.Task) bool { return a.Rating > b.Rating }
	case SortRatingAsc:
		less = func(a, b *models.Task) bool { return a.Rating < b.Rating }
	default:
		return
	}

	sort.SliceStable(tasks, func(i, j int) bool { return less(tasks[i], tasks[j]) })
}
