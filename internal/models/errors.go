package models

import "errors"

// Not-found errors for targeted board operations. The store returns these
// rather than raising: callers are free to ignore them, so UI-layer races
// (double-delete, stale drop target) degrade to no-ops instead of crashes.
var (
	// ErrColumnNotFound indicates the targeted column ID is absent from the board
	ErrColumnNotFound = errors.New("column not found")

	// ErrTaskNotFound indicates the targeted task ID is absent from every column
	ErrTaskNotFound = errors.New("task not found")

	// ErrLabelNotFound indicates the targeted label ID is absent from the board
	ErrLabelNotFound = errors.New("label not found")
)
