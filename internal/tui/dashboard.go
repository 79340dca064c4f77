package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/studyflow/internal/config"
	"github.com/akyairhashvil/studyflow/internal/grades"
	"github.com/akyairhashvil/studyflow/internal/models"
	"github.com/akyairhashvil/studyflow/internal/planner"
)

func (m AppModel) viewDashboard() string {
	var b strings.Builder

	pending := 0
	for _, a := range m.assignments {
		if a.Status == models.StatusPending {
			pending++
		}
	}
	gpa := grades.GPA(m.assignments)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Courses", fmt.Sprintf("%d", len(m.courses))),
		statCard("Pending Tasks", fmt.Sprintf("%d", pending)),
		statCard("Current GPA", fmt.Sprintf("%.2f", gpa)),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")
	b.WriteString(CurrentTheme.Header.Render("Upcoming Assignments"))
	b.WriteString("\n")

	upcoming := planner.Upcoming(m.assignments, config.UpcomingLimit)
	if len(upcoming) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("All caught up! No upcoming assignments."))
		return b.String()
	}

	now := time.Now()
	names := courseNames(m.courses)
	for _, a := range upcoming {
		deadline := planner.Classify(a.DueDate, now)
		title := ansi.Truncate(a.Title, 36, "…")
		course := CurrentTheme.Dim.Render(ansi.Truncate(names[a.CourseID], 24, "…"))
		line := fmt.Sprintf("%s  %s  %s  %s",
			CurrentTheme.Item.Render(title),
			course,
			PriorityStyle(a.Priority).Render(string(a.Priority)),
			UrgencyStyle(deadline),
		)
		b.WriteString(line + "\n")
	}
	return b.String()
}

func statCard(title, value string) string {
	content := CurrentTheme.Highlight.Render(value) + "\n" + CurrentTheme.Dim.Render(title)
	return CurrentTheme.StatCard.Render(content)
}

// courseNames builds the ID->name lookup used wherever an assignment
// shows its owning course. A dangling CourseID (orphaned assignment)
// simply renders an empty name.
func courseNames(courses []models.Course) map[int64]string {
	names := make(map[int64]string, len(courses))
	for _, c := range courses {
		names[c.ID] = c.Name
	}
	return names
}
