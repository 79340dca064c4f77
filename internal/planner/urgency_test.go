package planner

import (
	"testing"
	"time"
)

var refNow = time.Date(2025, 11, 14, 12, 0, 0, 0, time.UTC)

func TestClassifyOverdue(t *testing.T) {
	d := Classify(refNow.Add(-time.Hour), refNow)
	if d.Urgency != Overdue {
		t.Fatalf("expected overdue, got %v", d.Urgency)
	}
	if d.Label() != "overdue" {
		t.Fatalf("unexpected label %q", d.Label())
	}
}

func TestClassifyOverdueWinsOverToday(t *testing.T) {
	// Same calendar day but already past: overdue, not today.
	d := Classify(refNow.Add(-time.Minute), refNow)
	if d.Urgency != Overdue {
		t.Fatalf("expected same-day past deadline to be overdue, got %v", d.Urgency)
	}
}

func TestClassifyToday(t *testing.T) {
	d := Classify(refNow.Add(6*time.Hour), refNow)
	if d.Urgency != DueToday {
		t.Fatalf("expected today, got %v", d.Urgency)
	}
	if d.Label() != "today" {
		t.Fatalf("unexpected label %q", d.Label())
	}
}

func TestClassifyTomorrow(t *testing.T) {
	d := Classify(refNow.AddDate(0, 0, 1), refNow)
	if d.Urgency != DueTomorrow {
		t.Fatalf("expected tomorrow, got %v", d.Urgency)
	}
}

func TestClassifyDaysOutRoundsUp(t *testing.T) {
	// 2.5 days out rounds up to 3.
	d := Classify(refNow.Add(60*time.Hour), refNow)
	if d.Urgency != DueInDays {
		t.Fatalf("expected days-out bucket, got %v", d.Urgency)
	}
	if d.Days != 3 {
		t.Fatalf("expected 3 days, got %d", d.Days)
	}
	if d.Label() != "3 days" {
		t.Fatalf("unexpected label %q", d.Label())
	}
}

func TestClassifyExactDays(t *testing.T) {
	d := Classify(refNow.Add(96*time.Hour), refNow)
	if d.Urgency != DueInDays || d.Days != 4 {
		t.Fatalf("expected exactly 4 days, got %v/%d", d.Urgency, d.Days)
	}
}
