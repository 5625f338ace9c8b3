package models

// ============================================================================
// DEFAULT BOARD
// ============================================================================

// Default column IDs
const (
	ColumnDraft     = "draft"
	ColumnUnsolved  = "unsolved"
	ColumnReview    = "review"
	ColumnSolved    = "solved"
	ColumnNeedsInfo = "needs_info"
)

// DefaultRating is the rating assigned to tasks created without one
const DefaultRating = 8.8

// DefaultTaskTitle is the title assigned to tasks created without one
const DefaultTaskTitle = "New Task"

// MaxColumnTitleLength caps column titles at the form boundary
const MaxColumnTitleLength = 50

// DefaultColumns returns a fresh copy of the initial board columns.
// Callers own the returned slice.
func DefaultColumns() []Column {
	return []Column{
		{ID: ColumnDraft, Title: "Draft", Order: 0},
		{ID: ColumnUnsolved, Title: "Unsolved", Order: 1},
		{ID: ColumnReview, Title: "Under Review", Order: 2},
		{ID: ColumnSolved, Title: "Solved", Order: 3},
		{ID: ColumnNeedsInfo, Title: "Needs Info", Order: 4},
	}
}

// DefaultLabels returns a fresh copy of the initial label set.
func DefaultLabels() []Label {
	return []Label{
		{ID: "security", Name: "Security", Color: "#dc2626"},
		{ID: "bug", Name: "Bug", Color: "#ea580c"},
		{ID: "feature", Name: "Feature", Color: "#16a34a"},
		{ID: "disclosure", Name: "Disclosure", Color: "#2563eb"},
	}
}
