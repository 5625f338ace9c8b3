package models

import "testing"

func TestPriorityRankOrdering(t *testing.T) {
	if PriorityRank(PriorityCritical) <= PriorityRank(PriorityHigh) ||
		PriorityRank(PriorityHigh) <= PriorityRank(PriorityMedium) ||
		PriorityRank(PriorityMedium) <= PriorityRank(PriorityLow) {
		t.Error("priority ranks are not strictly decreasing from Critical to Low")
	}
}

func TestPriorityRankUnknown(t *testing.T) {
	for _, priority := range []string{"", "critical", "URGENT"} {
		if rank := PriorityRank(priority); rank != 0 {
			t.Errorf("PriorityRank(%q) = %d, want 0", priority, rank)
		}
	}
	if PriorityRank("bogus") >= PriorityRank(PriorityLow) {
		t.Error("unknown priority does not rank below Low")
	}
}

func TestPriorityColor(t *testing.T) {
	cases := map[string]string{
		PriorityCritical: "#8b1538",
		PriorityHigh:     "#dc2626",
		PriorityMedium:   "#f97316",
		PriorityLow:      "#eab308",
	}
	for priority, want := range cases {
		if got := PriorityColor(priority); got != want {
			t.Errorf("PriorityColor(%s) = %s, want %s", priority, got, want)
		}
	}
}

func TestPriorityColorUnknownFallsBackToMedium(t *testing.T) {
	if got := PriorityColor("bogus"); got != "#f97316" {
		t.Errorf("PriorityColor(bogus) = %s, want Medium color", got)
	}
}

func TestValidPriority(t *testing.T) {
	for _, priority := range Priorities {
		if !ValidPriority(priority) {
			t.Errorf("ValidPriority(%s) = false", priority)
		}
	}
	for _, priority := range []string{"", "medium", "Blocker"} {
		if ValidPriority(priority) {
			t.Errorf("ValidPriority(%q) = true", priority)
		}
	}
}
