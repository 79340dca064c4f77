package planner

import (
	"fmt"
	"time"
)

// Urgency classifies a due date relative to a reference moment.
type Urgency int

const (
	Overdue Urgency = iota
	DueToday
	DueTomorrow
	DueInDays
)

// Deadline is the urgency classification of one due date.
type Deadline struct {
	Urgency Urgency
	Days    int // populated for DueInDays
}

// Classify buckets a due date against now. Evaluation order matters:
// anything already past is overdue even when it shares today's date.
func Classify(due, now time.Time) Deadline {
	if due.Before(now) {
		return Deadline{Urgency: Overdue}
	}
	if sameDay(due, now) {
		return Deadline{Urgency: DueToday}
	}
	if sameDay(due, now.AddDate(0, 0, 1)) {
		return Deadline{Urgency: DueTomorrow}
	}
	days := int(due.Sub(now) / (24 * time.Hour))
	if due.Sub(now)%(24*time.Hour) > 0 {
		days++
	}
	return Deadline{Urgency: DueInDays, Days: days}
}

// Label renders the classification the way the dashboard shows it.
func (d Deadline) Label() string {
	switch d.Urgency {
	case Overdue:
		return "overdue"
	case DueToday:
		return "today"
	case DueTomorrow:
		return "tomorrow"
	default:
		return fmt.Sprintf("%d days", d.Days)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
