// Package grades computes weighted course averages, completion rates,
// and the dashboard GPA projection. All functions are pure: inputs are
// never mutated and every input, including the empty set, is valid.
package grades

import (
	"github.com/akyairhashvil/studyflow/internal/config"
	"github.com/akyairhashvil/studyflow/internal/models"
)

// Summary is the grade breakdown for one course.
type Summary struct {
	Average         float64 // weight-normalized, graded-completed items only
	CompletedWeight float64 // not clamped; totals over 100 pass through
	RemainingWeight float64 // floored at 0
}

// Summarize computes the weighted average over the assignments that are
// both completed and graded. Weight of pending or ungraded assignments
// never enters the denominator.
func Summarize(assignments []models.Assignment) Summary {
	var weighted, totalWeight float64
	for _, a := range assignments {
		if !a.Graded() {
			continue
		}
		weighted += *a.Grade * float64(a.Weight)
		totalWeight += float64(a.Weight)
	}
	if totalWeight == 0 {
		return Summary{Average: 0, CompletedWeight: 0, RemainingWeight: 100}
	}
	remaining := 100 - totalWeight
	if remaining < 0 {
		remaining = 0
	}
	return Summary{
		Average:         weighted / totalWeight,
		CompletedWeight: totalWeight,
		RemainingWeight: remaining,
	}
}

// CompletionRate is the percentage of assignments marked completed,
// by status alone. Grade presence is irrelevant here.
func CompletionRate(assignments []models.Assignment) float64 {
	if len(assignments) == 0 {
		return 0
	}
	completed := 0
	for _, a := range assignments {
		if a.Completed() {
			completed++
		}
	}
	return float64(completed) / float64(len(assignments)) * 100
}

// GPA projects a 4.0-scale GPA from every completed and graded
// assignment system-wide. The mean is flat: no per-course or per-weight
// adjustment at this level.
func GPA(assignments []models.Assignment) float64 {
	var sum float64
	count := 0
	for _, a := range assignments {
		if !a.Graded() {
			continue
		}
		sum += *a.Grade
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count) / 100 * config.GPAScale
}

// ForCourse filters to the assignments belonging to one course,
// preserving input order.
func ForCourse(courseID int64, assignments []models.Assignment) []models.Assignment {
	var out []models.Assignment
	for _, a := range assignments {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out
}
