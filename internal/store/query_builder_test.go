package store

import "testing"

func TestAssignmentQueryNoFilters(t *testing.T) {
	query, args := NewAssignmentQuery().Build()
	want := "SELECT " + assignmentColumns + " FROM assignments"
	if query != want {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestAssignmentQueryFiltersJoinWithAnd(t *testing.T) {
	query, args := NewAssignmentQuery().
		WhereCourse(3).
		WhereStatus("pending").
		Build()
	want := "SELECT " + assignmentColumns + " FROM assignments WHERE course_id = ? AND status = ?"
	if query != want {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(args) != 2 || args[0] != int64(3) || args[1] != "pending" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestAssignmentQueryOrderAndLimit(t *testing.T) {
	query, _ := NewAssignmentQuery().
		OrderBy("due_date ASC").
		Limit(5).
		Build()
	want := "SELECT " + assignmentColumns + " FROM assignments ORDER BY due_date ASC LIMIT 5"
	if query != want {
		t.Fatalf("unexpected query: %q", query)
	}
}
