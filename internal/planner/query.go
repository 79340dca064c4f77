// Package planner produces filtered, sorted, and calendar-bucketed
// views of an assignment collection. Inputs are never mutated; every
// function returns a fresh slice.
package planner

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/studyflow/internal/models"
)

// Filter describes the assignment list controls. Zero values mean "all".
type Filter struct {
	Search   string
	CourseID int64
	Status   models.AssignmentStatus
	Priority models.Priority
}

// Apply returns the assignments matching every predicate of the filter.
// Text search is a case-insensitive substring test against the
// assignment title and the owning course's name.
func Apply(f Filter, assignments []models.Assignment, courses []models.Course) []models.Assignment {
	names := make(map[int64]string, len(courses))
	for _, c := range courses {
		names[c.ID] = c.Name
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(names[a.CourseID]), search) {
			continue
		}
		if f.CourseID != 0 && a.CourseID != f.CourseID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Priority != "" && a.Priority != f.Priority {
			continue
		}
		out = append(out, a)
	}
	return out
}

// SortByDueDate sorts ascending by due date. The sort is stable:
// assignments sharing a due date keep their input order, there is no
// secondary key.
func SortByDueDate(assignments []models.Assignment) []models.Assignment {
	out := make([]models.Assignment, len(assignments))
	copy(out, assignments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// Upcoming returns the next pending assignments by due date, at most
// limit entries.
func Upcoming(assignments []models.Assignment, limit int) []models.Assignment {
	pending := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Status == models.StatusPending {
			pending = append(pending, a)
		}
	}
	pending = SortByDueDate(pending)
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}
