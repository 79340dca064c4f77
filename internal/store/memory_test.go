package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/studyflow/internal/models"
	"github.com/akyairhashvil/studyflow/internal/testutil"
)

func TestMemoryAssignsMonotonicIDs(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.CreateCourse(ctx, testutil.NewCourse().Build())
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	second, err := m.CreateCourse(ctx, testutil.NewCourse().WithName("Algorithms").Build())
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}

	if err := m.DeleteCourse(ctx, second.ID); err != nil {
		t.Fatalf("DeleteCourse failed: %v", err)
	}
	third, err := m.CreateCourse(ctx, testutil.NewCourse().WithName("Compilers").Build())
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if third.ID <= first.ID {
		t.Fatalf("id reuse after delete: %d", third.ID)
	}
}

func TestMemoryCompletedAtTransitions(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a, err := m.CreateAssignment(ctx, testutil.NewAssignment().Build())
	if err != nil {
		t.Fatalf("CreateAssignment failed: %v", err)
	}
	if a.CompletedAt != nil {
		t.Fatalf("pending assignment must not be stamped")
	}

	a.Status = models.StatusCompleted
	completed, err := m.UpdateAssignment(ctx, a)
	if err != nil {
		t.Fatalf("UpdateAssignment failed: %v", err)
	}
	if completed.CompletedAt == nil {
		t.Fatalf("expected completion stamp")
	}

	completed.Status = models.StatusPending
	reverted, err := m.UpdateAssignment(ctx, completed)
	if err != nil {
		t.Fatalf("UpdateAssignment failed: %v", err)
	}
	if reverted.CompletedAt != nil {
		t.Fatalf("reverting to pending must clear the stamp")
	}
}

func TestMemoryDeleteCourseOrphansAssignments(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	course, err := m.CreateCourse(ctx, testutil.NewCourse().Build())
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	a, err := m.CreateAssignment(ctx, testutil.NewAssignment().WithCourse(course.ID).Build())
	if err != nil {
		t.Fatalf("CreateAssignment failed: %v", err)
	}

	if err := m.DeleteCourse(ctx, course.ID); err != nil {
		t.Fatalf("DeleteCourse failed: %v", err)
	}
	if _, err := m.GetAssignment(ctx, a.ID); err != nil {
		t.Fatalf("assignment must survive its course: %v", err)
	}
}

func TestMemoryNotFoundMatchesSentinel(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.CreateStudent(ctx, testutil.NewStudent().Build()); err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}

	_, err := m.GetStudent(ctx, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if len(nf.Known) != 1 {
		t.Fatalf("expected one known id, got %v", nf.Known)
	}
}

func TestMemoryListOrdering(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	due := time.Date(2025, 11, 14, 12, 0, 0, 0, time.UTC)
	if _, err := m.CreateAssignment(ctx, testutil.NewAssignment().WithTitle("later").WithDueDate(due.AddDate(0, 0, 2)).Build()); err != nil {
		t.Fatalf("CreateAssignment failed: %v", err)
	}
	if _, err := m.CreateAssignment(ctx, testutil.NewAssignment().WithTitle("sooner").WithDueDate(due).Build()); err != nil {
		t.Fatalf("CreateAssignment failed: %v", err)
	}

	assignments, err := m.ListAssignments(ctx)
	if err != nil {
		t.Fatalf("ListAssignments failed: %v", err)
	}
	if assignments[0].Title != "sooner" {
		t.Fatalf("assignments not ordered by due date: %q first", assignments[0].Title)
	}

	if _, err := m.CreateCourse(ctx, testutil.NewCourse().WithName("Zoology").Build()); err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if _, err := m.CreateCourse(ctx, testutil.NewCourse().WithName("Algebra").Build()); err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	courses, err := m.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if courses[0].Name != "Algebra" {
		t.Fatalf("courses not ordered by name: %q first", courses[0].Name)
	}
}

func TestMemorySessionDuration(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	start := time.Date(2025, 11, 14, 9, 0, 0, 0, time.UTC)
	s, err := m.CreateSession(ctx, models.StudySession{StartTime: start, EndTime: start.Add(160 * time.Second)})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if s.DurationSeconds != 160 {
		t.Fatalf("expected 160 seconds, got %d", s.DurationSeconds)
	}

	if _, err := m.CreateSession(ctx, models.StudySession{StartTime: start, EndTime: start}); err == nil {
		t.Fatalf("expected error for zero-length session")
	}

	later, err := m.CreateSession(ctx, models.StudySession{StartTime: start.Add(time.Hour), EndTime: start.Add(2 * time.Hour)})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	sessions, err := m.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 2 || sessions[0].ID != later.ID {
		t.Fatalf("expected newest session first, got %+v", sessions)
	}
}

func TestMemoryUpdatePreservesCreatedAt(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created, err := m.CreateStudent(ctx, testutil.NewStudent().Build())
	if err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}
	created.Major = "Physics"
	created.CreatedAt = time.Time{}
	updated, err := m.UpdateStudent(ctx, created)
	if err != nil {
		t.Fatalf("UpdateStudent failed: %v", err)
	}
	if updated.CreatedAt.IsZero() {
		t.Fatalf("update must restore the original CreatedAt")
	}
}
