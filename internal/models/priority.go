package models

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

// Priority levels, highest to lowest
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

// Priorities lists all valid priority values in rank order
var Priorities = []string{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// priorityRanks maps each priority to its sort rank. Higher is more urgent.
var priorityRanks = map[string]int{
	PriorityCritical: 4,
	PriorityHigh:     3,
	PriorityMedium:   2,
	PriorityLow:      1,
}

// priorityColors maps each priority to its display color
var priorityColors = map[string]string{
	PriorityCritical: "#8b1538",
	PriorityHigh:     "#dc2626",
	PriorityMedium:   "#f97316",
	PriorityLow:      "#eab308",
}

// PriorityRank returns the sort rank for a priority value.
// Unknown priorities rank 0, below Low, so comparisons never fail.
func PriorityRank(priority string) int {
	return priorityRanks[priority]
}

// PriorityColor returns the display color for a priority value,
// falling back to the Medium color for unknown values.
func PriorityColor(priority string) string {
	if color, ok := priorityColors[priority]; ok {
		return color
	}
	return priorityColors[PriorityMedium]
}

// ValidPriority reports whether the given value is a known priority level.
func ValidPriority(priority string) bool {
	_, ok := priorityRanks[priority]
	return ok
}
