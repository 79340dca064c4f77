package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/studyflow/internal/planner"
)

// FormatCountdown renders remaining seconds as MM:SS (or H:MM:SS past
// an hour).
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatSessionLength formats a recorded session duration for the
// history list (e.g. "25 min", "1h 05m").
func FormatSessionLength(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%d min", seconds/60)
	}
	return fmt.Sprintf("%dh %02dm", seconds/3600, (seconds%3600)/60)
}

// FormatDueDate renders a due date the way the dashboard does: Today,
// Tomorrow, or a short date.
func FormatDueDate(due, now time.Time) string {
	switch planner.Classify(due, now).Urgency {
	case planner.DueToday:
		return "Today"
	case planner.DueTomorrow:
		return "Tomorrow"
	default:
		return due.Format("Jan 2")
	}
}

// UrgencyStyle picks the theme style for a deadline classification.
func UrgencyStyle(d planner.Deadline) string {
	switch d.Urgency {
	case planner.Overdue:
		return CurrentTheme.Overdue.Render(d.Label())
	case planner.DueToday:
		return CurrentTheme.DueToday.Render(d.Label())
	case planner.DueTomorrow:
		return CurrentTheme.DueTomorrow.Render(d.Label())
	default:
		return CurrentTheme.Dim.Render(d.Label())
	}
}
