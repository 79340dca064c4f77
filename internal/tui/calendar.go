package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/studyflow/internal/planner"
)

const calendarCellWidth = 16

// maxPerCell is the display cap: each cell shows at most two
// assignments plus an overflow count. The bucket itself is complete;
// only the rendering truncates.
const maxPerCell = 2

func (m AppModel) handleCalendarKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.calMonth = m.calMonth.AddDate(0, -1, 0)
	case "right", "l":
		m.calMonth = m.calMonth.AddDate(0, 1, 0)
	case "t":
		m.calMonth = time.Now()
	}
	return m, nil
}

func (m AppModel) viewCalendar() string {
	now := time.Now()
	grid := planner.MonthGrid(m.calMonth, now, m.assignments)

	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render(m.calMonth.Format("January 2006")))
	b.WriteString("\n")

	var header []string
	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		header = append(header, CurrentTheme.Dim.Render(padCell(name)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	colors := make(map[int64]string, len(m.courses))
	for _, c := range m.courses {
		colors[c.ID] = c.Color
	}

	for _, week := range planner.Weeks(grid) {
		var cells []string
		for _, day := range week {
			cells = append(cells, renderDay(day, colors))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}

func renderDay(day planner.Day, colors map[int64]string) string {
	num := fmt.Sprintf("%2d", day.Date.Day())
	switch {
	case day.Today:
		num = CurrentTheme.Selected.Render(num + "•")
	case !day.InMonth:
		num = CurrentTheme.Dim.Render(num)
	}

	lines := []string{num}
	for i, a := range day.Assignments {
		if i == maxPerCell {
			lines = append(lines, CurrentTheme.Dim.Render(fmt.Sprintf("+%d more", len(day.Assignments)-maxPerCell)))
			break
		}
		style := CourseColorStyle(colors[a.CourseID])
		lines = append(lines, style.Render(ansi.Truncate(a.Title, calendarCellWidth-2, "…")))
	}

	cell := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(calendarCellWidth).Height(maxPerCell + 2).Render(cell)
}

func padCell(s string) string {
	if len(s) >= calendarCellWidth {
		return s[:calendarCellWidth]
	}
	return s + strings.Repeat(" ", calendarCellWidth-len(s))
}
