package models

// Column represents a kanban board column (e.g., "Draft", "Under Review")
// Columns are displayed in ascending Order; ties keep insertion order
type Column struct {
	ID    string `json:"id"`    // Unique identifier, immutable once created
	Title string `json:"title"` // Display name of the column
	Order int    `json:"order"` // Display sequence
}
