package models

import "time"

// AssignmentStatus enumerates the possible states of an assignment.
type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusCompleted AssignmentStatus = "completed"
)

// Priority enumerates assignment urgency levels.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Student represents an enrolled student record.
type Student struct {
	ID             int64
	Name           string `validate:"required"`
	Email          string `validate:"required,email"`
	Phone          string
	Major          string
	Year           int      `validate:"omitempty,min=1,max=4"` // 0 means unset
	GPA            *float64 `validate:"omitempty,min=0,max=4"`
	EnrollmentDate time.Time
	CreatedAt      time.Time
}

// ScheduleSlot is a single weekly meeting of a course.
type ScheduleSlot struct {
	Day  string `json:"day" validate:"required"`
	Time string `json:"time" validate:"required"`
}

// Course represents a course the student is taking.
type Course struct {
	ID         int64
	Name       string `validate:"required"`
	Code       string `validate:"required"`
	Instructor string
	Color      string `validate:"omitempty,hexcolor"`
	Credits    int    `validate:"min=1,max=6"`
	Semester   string
	Schedule   []ScheduleSlot `validate:"min=1,dive"`
	CreatedAt  time.Time
}

// Assignment represents a graded (or gradable) piece of coursework.
// CourseID is a weak reference: deleting the course leaves the
// assignment in place with a dangling ID.
type Assignment struct {
	ID          int64
	Title       string `validate:"required"`
	Description string
	CourseID    int64            `validate:"required"`
	DueDate     time.Time        `validate:"required"`
	Priority    Priority         `validate:"oneof=low medium high"`
	Status      AssignmentStatus `validate:"oneof=pending completed"`
	Weight      int              `validate:"min=1,max=100"`
	Grade       *float64         `validate:"omitempty,min=0,max=100"` // meaningful only when completed
	CreatedAt   time.Time
	CompletedAt *time.Time // set when Status flips to completed, cleared on revert
}

// Completed reports whether the assignment is marked done, regardless
// of whether a grade has been recorded.
func (a Assignment) Completed() bool {
	return a.Status == StatusCompleted
}

// Graded reports whether the assignment counts toward the weighted
// course average.
func (a Assignment) Graded() bool {
	return a.Status == StatusCompleted && a.Grade != nil
}

// StudySession is one completed focus session. DurationSeconds is
// derived from the wall-clock bracket, pauses included.
type StudySession struct {
	ID              int64
	StartTime       time.Time `validate:"required"`
	EndTime         time.Time `validate:"required"`
	DurationSeconds int
}
