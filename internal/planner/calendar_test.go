package planner

import (
	"testing"
	"time"

	"github.com/akyairhashvil/studyflow/internal/models"
	"github.com/akyairhashvil/studyflow/internal/testutil"
)

func TestMonthGridSpansWholeWeeks(t *testing.T) {
	// November 2025 starts on a Saturday and ends on a Sunday.
	anchor := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	days := MonthGrid(anchor, anchor, nil)

	if len(days)%7 != 0 {
		t.Fatalf("grid length %d is not a whole number of weeks", len(days))
	}
	if days[0].Date.Weekday() != time.Sunday {
		t.Fatalf("grid starts on %v, want Sunday", days[0].Date.Weekday())
	}
	if days[len(days)-1].Date.Weekday() != time.Saturday {
		t.Fatalf("grid ends on %v, want Saturday", days[len(days)-1].Date.Weekday())
	}

	inMonth := 0
	for _, d := range days {
		if d.InMonth {
			inMonth++
		}
	}
	if inMonth != 30 {
		t.Fatalf("expected 30 in-month days for November, got %d", inMonth)
	}
}

func TestMonthGridContiguousDates(t *testing.T) {
	anchor := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	days := MonthGrid(anchor, anchor, nil)
	for i := 1; i < len(days); i++ {
		want := days[i-1].Date.AddDate(0, 0, 1)
		if !sameDay(days[i].Date, want) {
			t.Fatalf("gap in grid at index %d: %v after %v", i, days[i].Date, days[i-1].Date)
		}
	}
}

func TestMonthGridBucketsEachAssignmentOnce(t *testing.T) {
	anchor := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	assignments := []models.Assignment{
		testutil.NewAssignment().WithID(1).
			WithDueDate(time.Date(2025, 11, 14, 23, 59, 0, 0, time.UTC)).Build(),
		testutil.NewAssignment().WithID(2).
			WithDueDate(time.Date(2025, 11, 14, 9, 0, 0, 0, time.UTC)).Build(),
		// Leading pad cell: October 27 falls inside the padded grid.
		testutil.NewAssignment().WithID(3).
			WithDueDate(time.Date(2025, 10, 27, 10, 0, 0, 0, time.UTC)).Build(),
	}

	days := MonthGrid(anchor, anchor, assignments)
	seen := map[int64]int{}
	for _, d := range days {
		for _, a := range d.Assignments {
			seen[a.ID]++
		}
	}
	for _, a := range assignments {
		if seen[a.ID] != 1 {
			t.Fatalf("assignment %d appears %d times, want exactly once", a.ID, seen[a.ID])
		}
	}
}

func TestMonthGridMarksToday(t *testing.T) {
	anchor := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 11, 14, 16, 30, 0, 0, time.UTC)
	days := MonthGrid(anchor, now, nil)

	marked := 0
	for _, d := range days {
		if d.Today {
			marked++
			if d.Date.Day() != 14 {
				t.Fatalf("wrong day marked as today: %v", d.Date)
			}
		}
	}
	if marked != 1 {
		t.Fatalf("expected exactly one today cell, got %d", marked)
	}
}

func TestWeeksRowsOfSeven(t *testing.T) {
	anchor := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	days := MonthGrid(anchor, anchor, nil)
	weeks := Weeks(days)
	if len(weeks)*7 != len(days) {
		t.Fatalf("weeks drop or duplicate days: %d weeks for %d days", len(weeks), len(days))
	}
	for i, w := range weeks {
		if len(w) != 7 {
			t.Fatalf("week %d has %d days", i, len(w))
		}
	}
}
