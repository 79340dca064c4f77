package planner

import (
	"time"

	"github.com/akyairhashvil/studyflow/internal/models"
)

// Day is one cell of the month grid: a calendar date plus the
// assignments due on it. The grid always spans whole weeks, so leading
// and trailing cells may belong to adjacent months (InMonth false).
type Day struct {
	Date        time.Time
	InMonth     bool
	Today       bool
	Assignments []models.Assignment
}

// MonthGrid builds the calendar view for the month containing anchor.
// Weeks start on Sunday. Each assignment whose due date falls inside
// the padded range lands in exactly one cell, matched on year/month/day
// with time-of-day ignored.
func MonthGrid(anchor, now time.Time, assignments []models.Assignment) []Day {
	monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := startOfWeek(monthStart)
	gridEnd := endOfWeek(monthEnd)

	var days []Day
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		day := Day{
			Date:    d,
			InMonth: d.Month() == monthStart.Month(),
			Today:   sameDay(d, now),
		}
		for _, a := range assignments {
			if sameDay(a.DueDate, d) {
				day.Assignments = append(day.Assignments, a)
			}
		}
		days = append(days, day)
	}
	return days
}

// Weeks splits a grid into rows of seven for rendering.
func Weeks(days []Day) [][]Day {
	var weeks [][]Day
	for i := 0; i+7 <= len(days); i += 7 {
		weeks = append(weeks, days[i:i+7])
	}
	return weeks
}

func startOfWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

func endOfWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, int(time.Saturday-t.Weekday()))
}
