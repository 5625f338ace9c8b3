// Package validate is the form boundary: the input checks the board core
// deliberately omits. The CLI (or any other surface) runs these before
// calling the kanban service; the service and store trust their input.
package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/hypejab/triage/internal/models"
)

// Validation errors
var (
	ErrEmptyColumnTitle     = errors.New("column title cannot be empty")
	ErrColumnTitleTooLong   = errors.New("column title cannot exceed 50 characters")
	ErrDuplicateColumnTitle = errors.New("a column with this title already exists")
	ErrEmptyLabelName       = errors.New("label name cannot be empty")
	ErrDuplicateLabelName   = errors.New("a label with this name already exists")
	ErrInvalidLabelColor    = errors.New("label color must be a hex color like #dc2626")
	ErrRatingOutOfRange     = errors.New("rating must be between 0 and 10")
	ErrUnknownPriority      = errors.New("unknown priority level")
	ErrInvalidEmail         = errors.New("invalid email address")
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// ColumnTitle checks a new column title: non-empty, at most 50 characters,
// and unique among existing columns (case-insensitive).
func ColumnTitle(title string, existing []models.Column) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyColumnTitle
	}
	if len(title) > models.MaxColumnTitleLength {
		return ErrColumnTitleTooLong
	}
	for _, col := range existing {
		if strings.EqualFold(col.Title, title) {
			return ErrDuplicateColumnTitle
		}
	}
	return nil
}

// LabelName checks a new label name: non-empty and unique among existing
// labels (case-insensitive).
func LabelName(name string, existing []models.Label) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyLabelName
	}
	for _, label := range existing {
		if strings.EqualFold(label.Name, name) {
			return ErrDuplicateLabelName
		}
	}
	return nil
}

// LabelColor checks a hex color of the form #rrggbb.
func LabelColor(color string) error {
	if !hexColorRe.MatchString(color) {
		return ErrInvalidLabelColor
	}
	return nil
}

// Rating checks that a rating sits within [0, 10].
func Rating(rating float64) error {
	if rating < 0 || rating > 10 {
		return ErrRatingOutOfRange
	}
	return nil
}

// Priority checks that the value is a known priority level. Empty is allowed;
// the service fills the default.
func Priority(priority string) error {
	if priority == "" {
		return nil
	}
	if !models.ValidPriority(priority) {
		return ErrUnknownPriority
	}
	return nil
}

// Email performs a simple shape check, good enough for a mocked signup form.
func Email(email string) error {
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
