package testutil

import (
	"time"

	"github.com/akyairhashvil/studyflow/internal/models"
	"github.com/akyairhashvil/studyflow/internal/util"
)

// CourseBuilder provides a fluent API for creating test courses.
type CourseBuilder struct {
	course models.Course
}

func NewCourse() *CourseBuilder {
	return &CourseBuilder{
		course: models.Course{
			Name:     "Intro to CSS",
			Code:     "CSS101",
			Color:    "#6366f1",
			Credits:  3,
			Semester: "Fall 2025",
			Schedule: []models.ScheduleSlot{{Day: "Monday", Time: "10:00-11:30"}},
		},
	}
}

func (b *CourseBuilder) WithID(id int64) *CourseBuilder {
	b.course.ID = id
	return b
}

func (b *CourseBuilder) WithName(name string) *CourseBuilder {
	b.course.Name = name
	return b
}

func (b *CourseBuilder) WithCode(code string) *CourseBuilder {
	b.course.Code = code
	return b
}

func (b *CourseBuilder) Build() models.Course {
	return b.course
}

// AssignmentBuilder provides a fluent API for creating test assignments.
type AssignmentBuilder struct {
	assignment models.Assignment
}

func NewAssignment() *AssignmentBuilder {
	return &AssignmentBuilder{
		assignment: models.Assignment{
			Title:    "CSS Layout Basics",
			CourseID: 1,
			DueDate:  time.Date(2025, 11, 14, 23, 59, 0, 0, time.UTC),
			Priority: models.PriorityMedium,
			Status:   models.StatusPending,
			Weight:   10,
		},
	}
}

func (b *AssignmentBuilder) WithID(id int64) *AssignmentBuilder {
	b.assignment.ID = id
	return b
}

func (b *AssignmentBuilder) WithTitle(title string) *AssignmentBuilder {
	b.assignment.Title = title
	return b
}

func (b *AssignmentBuilder) WithCourse(courseID int64) *AssignmentBuilder {
	b.assignment.CourseID = courseID
	return b
}

func (b *AssignmentBuilder) WithDueDate(due time.Time) *AssignmentBuilder {
	b.assignment.DueDate = due
	return b
}

func (b *AssignmentBuilder) WithPriority(p models.Priority) *AssignmentBuilder {
	b.assignment.Priority = p
	return b
}

func (b *AssignmentBuilder) WithWeight(w int) *AssignmentBuilder {
	b.assignment.Weight = w
	return b
}

// Completed marks the assignment done with the given grade.
func (b *AssignmentBuilder) Completed(grade float64) *AssignmentBuilder {
	b.assignment.Status = models.StatusCompleted
	b.assignment.Grade = util.Ptr(grade)
	b.assignment.CompletedAt = util.Ptr(time.Now())
	return b
}

// CompletedUngraded marks the assignment done without a grade.
func (b *AssignmentBuilder) CompletedUngraded() *AssignmentBuilder {
	b.assignment.Status = models.StatusCompleted
	b.assignment.Grade = nil
	b.assignment.CompletedAt = util.Ptr(time.Now())
	return b
}

func (b *AssignmentBuilder) Build() models.Assignment {
	return b.assignment
}

// StudentBuilder provides a fluent API for creating test students.
type StudentBuilder struct {
	student models.Student
}

func NewStudent() *StudentBuilder {
	return &StudentBuilder{
		student: models.Student{
			Name:  "Alex Johnson",
			Email: "alex.johnson@university.edu",
			Major: "Computer Science",
			Year:  2,
		},
	}
}

func (b *StudentBuilder) WithName(name string) *StudentBuilder {
	b.student.Name = name
	return b
}

func (b *StudentBuilder) WithEmail(email string) *StudentBuilder {
	b.student.Email = email
	return b
}

func (b *StudentBuilder) WithYear(year int) *StudentBuilder {
	b.student.Year = year
	return b
}

func (b *StudentBuilder) WithGPA(gpa float64) *StudentBuilder {
	b.student.GPA = &gpa
	return b
}

func (b *StudentBuilder) Build() models.Student {
	return b.student
}
