// Package store is the record store port: CRUD repositories keyed by
// numeric identifier, with a SQLite adapter for the app and an
// in-memory adapter for deterministic fixtures. Engines never talk to
// persistence directly; they consume plain slices fetched through this
// interface.
package store

import (
	"context"

	"github.com/akyairhashvil/studyflow/internal/models"
)

// StudentRepository defines student-related store operations.
type StudentRepository interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id int64) (models.Student, error)
	CreateStudent(ctx context.Context, s models.Student) (models.Student, error)
	UpdateStudent(ctx context.Context, s models.Student) (models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// CourseRepository defines course-related store operations. Deleting a
// course never cascades: its assignments keep their dangling CourseID.
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int64) (models.Course, error)
	CreateCourse(ctx context.Context, c models.Course) (models.Course, error)
	UpdateCourse(ctx context.Context, c models.Course) (models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// AssignmentRepository defines assignment-related store operations.
// Update owns the CompletedAt transition: flipping status to completed
// stamps it, reverting to pending clears it.
type AssignmentRepository interface {
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	ListAssignmentsForCourse(ctx context.Context, courseID int64) ([]models.Assignment, error)
	GetAssignment(ctx context.Context, id int64) (models.Assignment, error)
	CreateAssignment(ctx context.Context, a models.Assignment) (models.Assignment, error)
	UpdateAssignment(ctx context.Context, a models.Assignment) (models.Assignment, error)
	DeleteAssignment(ctx context.Context, id int64) error
}

// SessionRepository defines study session store operations. Create
// derives DurationSeconds from the end-start bracket and rejects
// non-positive durations.
type SessionRepository interface {
	ListSessions(ctx context.Context) ([]models.StudySession, error)
	CreateSession(ctx context.Context, s models.StudySession) (models.StudySession, error)
}

// Store combines all repository interfaces.
type Store interface {
	StudentRepository
	CourseRepository
	AssignmentRepository
	SessionRepository
	Close() error
}

var (
	_ Store = (*Database)(nil)
	_ Store = (*Memory)(nil)
)
