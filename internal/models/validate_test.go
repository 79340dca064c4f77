package models

import (
	"strings"
	"testing"
	"time"
)

func validStudent() Student {
	return Student{Name: "Alex Johnson", Email: "alex@university.edu", Year: 2}
}

func validCourse() Course {
	return Course{
		Name:     "Data Structures",
		Code:     "CS201",
		Color:    "#3b82f6",
		Credits:  4,
		Schedule: []ScheduleSlot{{Day: "Tuesday", Time: "14:00-15:30"}},
	}
}

func validAssignment() Assignment {
	return Assignment{
		Title:    "Problem Set 3",
		CourseID: 1,
		DueDate:  time.Date(2025, 11, 21, 23, 59, 0, 0, time.UTC),
		Priority: PriorityMedium,
		Status:   StatusPending,
		Weight:   15,
	}
}

func TestStudentValidate(t *testing.T) {
	if err := validStudent().Validate(); err != nil {
		t.Fatalf("valid student rejected: %v", err)
	}

	s := validStudent()
	s.Email = "not-an-email"
	err := s.Validate()
	if err == nil {
		t.Fatalf("expected error for malformed email")
	}
	if !strings.Contains(err.Error(), "Email") {
		t.Fatalf("error should name the field: %q", err.Error())
	}

	s = validStudent()
	s.Year = 5
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for year out of range")
	}

	s = validStudent()
	s.Year = 0 // unset is allowed
	if err := s.Validate(); err != nil {
		t.Fatalf("unset year rejected: %v", err)
	}

	gpa := 4.5
	s = validStudent()
	s.GPA = &gpa
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for GPA above scale")
	}
}

func TestCourseValidate(t *testing.T) {
	if err := validCourse().Validate(); err != nil {
		t.Fatalf("valid course rejected: %v", err)
	}

	c := validCourse()
	c.Color = "blue"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for non-hex color")
	}

	c = validCourse()
	c.Credits = 7
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for credits out of range")
	}

	c = validCourse()
	c.Schedule = nil
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for empty schedule")
	}

	c = validCourse()
	c.Schedule = []ScheduleSlot{{Day: "Monday"}}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for slot missing its time")
	}
}

func TestAssignmentValidate(t *testing.T) {
	if err := validAssignment().Validate(); err != nil {
		t.Fatalf("valid assignment rejected: %v", err)
	}

	a := validAssignment()
	a.Priority = "urgent"
	if err := a.Validate(); err == nil {
		t.Fatalf("expected error for unknown priority")
	}

	a = validAssignment()
	a.Weight = 0
	if err := a.Validate(); err == nil {
		t.Fatalf("expected error for zero weight")
	}
	a.Weight = 101
	if err := a.Validate(); err == nil {
		t.Fatalf("expected error for weight above 100")
	}

	grade := 104.0
	a = validAssignment()
	a.Grade = &grade
	if err := a.Validate(); err == nil {
		t.Fatalf("expected error for grade above 100")
	}

	a = validAssignment()
	a.CourseID = 0
	if err := a.Validate(); err == nil {
		t.Fatalf("expected error for missing course reference")
	}
}

func TestStudySessionValidate(t *testing.T) {
	start := time.Date(2025, 11, 14, 9, 0, 0, 0, time.UTC)

	s := StudySession{StartTime: start, EndTime: start.Add(25 * time.Minute)}
	if err := s.Validate(); err != nil {
		t.Fatalf("valid session rejected: %v", err)
	}

	s = StudySession{StartTime: start, EndTime: start}
	err := s.Validate()
	if err == nil {
		t.Fatalf("expected error for zero-length session")
	}
	if !strings.Contains(err.Error(), "invalid duration") {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	s = StudySession{StartTime: start, EndTime: start.Add(-time.Minute)}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for end before start")
	}
}

func TestAssignmentHelpers(t *testing.T) {
	a := validAssignment()
	if a.Completed() || a.Graded() {
		t.Fatalf("pending assignment reported done")
	}

	a.Status = StatusCompleted
	if !a.Completed() {
		t.Fatalf("completed assignment not reported done")
	}
	if a.Graded() {
		t.Fatalf("ungraded assignment reported graded")
	}

	grade := 88.0
	a.Grade = &grade
	if !a.Graded() {
		t.Fatalf("graded assignment not reported graded")
	}
}
