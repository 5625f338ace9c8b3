package validate

import (
	"strings"
	"testing"

	"github.com/hypejab/triage/internal/models"
)

func TestColumnTitle(t *testing.T) {
	existing := models.DefaultColumns()

	cases := []struct {
		name  string
		title string
		want  error
	}{
		{"valid", "Backlog", nil},
		{"empty", "", ErrEmptyColumnTitle},
		{"whitespace only", "   ", ErrEmptyColumnTitle},
		{"at limit", strings.Repeat("x", 50), nil},
		{"over limit", strings.Repeat("x", 51), ErrColumnTitleTooLong},
		{"duplicate exact", "Draft", ErrDuplicateColumnTitle},
		{"duplicate case-insensitive", "dRaFt", ErrDuplicateColumnTitle},
		{"duplicate multiword", "under review", ErrDuplicateColumnTitle},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ColumnTitle(tc.title, existing); got != tc.want {
				t.Errorf("ColumnTitle(%q) = %v, want %v", tc.title, got, tc.want)
			}
		})
	}
}

func TestLabelName(t *testing.T) {
	existing := models.DefaultLabels()

	cases := []struct {
		name  string
		label string
		want  error
	}{
		{"valid", "Urgent", nil},
		{"empty", "", ErrEmptyLabelName},
		{"whitespace only", "  ", ErrEmptyLabelName},
		{"duplicate", "Security", ErrDuplicateLabelName},
		{"duplicate case-insensitive", "SECURITY", ErrDuplicateLabelName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LabelName(tc.label, existing); got != tc.want {
				t.Errorf("LabelName(%q) = %v, want %v", tc.label, got, tc.want)
			}
		})
	}
}

func TestLabelColor(t *testing.T) {
	for _, color := range []string{"#dc2626", "#000000", "#ABCDEF"} {
		if err := LabelColor(color); err != nil {
			t.Errorf("LabelColor(%q) = %v, want nil", color, err)
		}
	}
	for _, color := range []string{"", "dc2626", "#dc26", "#dc26267", "#gggggg", "red"} {
		if err := LabelColor(color); err != ErrInvalidLabelColor {
			t.Errorf("LabelColor(%q) = %v, want ErrInvalidLabelColor", color, err)
		}
	}
}

func TestRating(t *testing.T) {
	for _, rating := range []float64{0, 5.5, 8.8, 10} {
		if err := Rating(rating); err != nil {
			t.Errorf("Rating(%v) = %v, want nil", rating, err)
		}
	}
	for _, rating := range []float64{-0.1, 10.1, 100} {
		if err := Rating(rating); err != ErrRatingOutOfRange {
			t.Errorf("Rating(%v) = %v, want ErrRatingOutOfRange", rating, err)
		}
	}
}

func TestPriority(t *testing.T) {
	for _, priority := range []string{"", models.PriorityCritical, models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if err := Priority(priority); err != nil {
			t.Errorf("Priority(%q) = %v, want nil", priority, err)
		}
	}
	for _, priority := range []string{"critical", "Urgent", "none"} {
		if err := Priority(priority); err != ErrUnknownPriority {
			t.Errorf("Priority(%q) = %v, want ErrUnknownPriority", priority, err)
		}
	}
}

func TestEmail(t *testing.T) {
	for _, email := range []string{"a@b.co", "alice@example.com", "x.y+z@sub.domain.org"} {
		if err := Email(email); err != nil {
			t.Errorf("Email(%q) = %v, want nil", email, err)
		}
	}
	for _, email := range []string{"", "plain", "a@b", "a b@c.com", "@example.com", "a@.com"} {
		if err := Email(email); err != ErrInvalidEmail {
			t.Errorf("Email(%q) = %v, want ErrInvalidEmail", email, err)
		}
	}
}
