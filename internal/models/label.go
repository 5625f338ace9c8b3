package models

// Label represents a tag that can be applied to tasks, independent of column.
// Similar to GitHub labels: a name plus a hex color.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // Hex color code (e.g., "#dc2626")
}
