package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/studyflow/internal/config"
	"github.com/akyairhashvil/studyflow/internal/models"
	"github.com/akyairhashvil/studyflow/internal/planner"
)

// visibleAssignments is the filtered, due-date-sorted view the
// assignments table renders. It is recomputed from the source
// collection on every call; the collection itself is never reordered.
func (m AppModel) visibleAssignments() []models.Assignment {
	return planner.SortByDueDate(planner.Apply(m.filter, m.assignments, m.courses))
}

func (m AppModel) handleAssignmentsKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	visible := m.visibleAssignments()
	switch msg.String() {
	case "up", "k":
		if m.assignmentIdx > 0 {
			m.assignmentIdx--
		}
	case "down", "j":
		if m.assignmentIdx < len(visible)-1 {
			m.assignmentIdx++
		}
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.filter.Search)
		m.searchInput.Focus()
	case "c":
		m.filter.CourseID = m.cycleCourseFilter()
		m.assignmentIdx = 0
	case "s":
		m.filter.Status = cycleStatusFilter(m.filter.Status)
		m.assignmentIdx = 0
	case "p":
		m.filter.Priority = cyclePriorityFilter(m.filter.Priority)
		m.assignmentIdx = 0
	case " ", "space":
		if len(visible) > 0 {
			return m.toggleAssignment(visible[m.assignmentIdx])
		}
	case "n":
		m.form = m.newAssignmentForm(models.Assignment{}, false)
	case "e":
		if len(visible) > 0 {
			m.form = m.newAssignmentForm(visible[m.assignmentIdx], true)
		}
	case "d":
		if len(visible) > 0 {
			id := visible[m.assignmentIdx].ID
			return m, mutateCmd("Assignment deleted", func(ctx context.Context) error {
				return m.store.DeleteAssignment(ctx, id)
			})
		}
	}
	return m, nil
}

func (m AppModel) handleSearchKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filter.Search = strings.TrimSpace(m.searchInput.Value())
		m.searching = false
		m.assignmentIdx = 0
		return m, nil
	case "esc":
		m.searching = false
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// toggleAssignment flips pending<->completed. The store owns the
// CompletedAt stamp; the view just sends the new status.
func (m AppModel) toggleAssignment(a models.Assignment) (AppModel, tea.Cmd) {
	if a.Status == models.StatusCompleted {
		a.Status = models.StatusPending
	} else {
		a.Status = models.StatusCompleted
	}
	status := "Marked " + string(a.Status)
	return m, mutateCmd(status, func(ctx context.Context) error {
		_, err := m.store.UpdateAssignment(ctx, a)
		return err
	})
}

func (m AppModel) cycleCourseFilter() int64 {
	if len(m.courses) == 0 {
		return 0
	}
	if m.filter.CourseID == 0 {
		return m.courses[0].ID
	}
	for i, c := range m.courses {
		if c.ID == m.filter.CourseID {
			if i == len(m.courses)-1 {
				return 0 // back to "all"
			}
			return m.courses[i+1].ID
		}
	}
	return 0
}

func cycleStatusFilter(s models.AssignmentStatus) models.AssignmentStatus {
	switch s {
	case "":
		return models.StatusPending
	case models.StatusPending:
		return models.StatusCompleted
	default:
		return ""
	}
}

func cyclePriorityFilter(p models.Priority) models.Priority {
	switch p {
	case "":
		return models.PriorityLow
	case models.PriorityLow:
		return models.PriorityMedium
	case models.PriorityMedium:
		return models.PriorityHigh
	default:
		return ""
	}
}

func (m AppModel) viewAssignments() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Assignments"))
	b.WriteString("  " + CurrentTheme.Dim.Render(m.filterSummary()) + "\n")

	if m.searching {
		b.WriteString(m.searchInput.View() + "\n")
	}

	visible := m.visibleAssignments()
	if len(visible) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No assignments match the current filters."))
		return b.String()
	}

	now := time.Now()
	names := courseNames(m.courses)
	for i, a := range visible {
		marker := "  "
		if i == m.assignmentIdx {
			marker = "> "
		}
		check := "[ ]"
		if a.Status == models.StatusCompleted {
			check = "[x]"
		}
		grade := ""
		if a.Grade != nil {
			grade = fmt.Sprintf("  %.0f%%", *a.Grade)
		}
		line := fmt.Sprintf("%s%s %s  %s  %s  w%d  %s%s",
			marker,
			check,
			StatusStyle(a.Status).Render(ansi.Truncate(a.Title, 32, "…")),
			CurrentTheme.Dim.Render(ansi.Truncate(names[a.CourseID], 20, "…")),
			PriorityStyle(a.Priority).Render(string(a.Priority)),
			a.Weight,
			UrgencyStyle(planner.Classify(a.DueDate, now)),
			grade,
		)
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m AppModel) filterSummary() string {
	var parts []string
	if m.filter.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", m.filter.Search))
	}
	if m.filter.CourseID != 0 {
		parts = append(parts, "course="+courseNames(m.courses)[m.filter.CourseID])
	}
	if m.filter.Status != "" {
		parts = append(parts, "status="+string(m.filter.Status))
	}
	if m.filter.Priority != "" {
		parts = append(parts, "priority="+string(m.filter.Priority))
	}
	if len(parts) == 0 {
		return "showing all"
	}
	return strings.Join(parts, " ")
}

func (m AppModel) newAssignmentForm(a models.Assignment, editing bool) *formModel {
	title := "New Assignment"
	if editing {
		title = "Edit Assignment"
	}
	weight := config.DefaultWeight
	if a.Weight > 0 {
		weight = a.Weight
	}
	priority := models.PriorityMedium
	if a.Priority != "" {
		priority = a.Priority
	}
	due := ""
	if !a.DueDate.IsZero() {
		due = a.DueDate.Format("2006-01-02 15:04")
	}
	courseID := ""
	if a.CourseID != 0 {
		courseID = strconv.FormatInt(a.CourseID, 10)
	}
	grade := ""
	if a.Grade != nil {
		grade = strconv.FormatFloat(*a.Grade, 'f', -1, 64)
	}
	st := m.store
	id := a.ID
	status := a.Status

	return newForm(title, func(values []string) tea.Cmd {
		assignment, err := parseAssignmentForm(values)
		if err != nil {
			return func() tea.Msg { return mutationDoneMsg{err: err} }
		}
		assignment.ID = id
		assignment.Status = status
		if editing {
			return mutateCmd("Assignment updated", func(ctx context.Context) error {
				_, err := st.UpdateAssignment(ctx, assignment)
				return err
			})
		}
		return mutateCmd("Assignment created", func(ctx context.Context) error {
			_, err := st.CreateAssignment(ctx, assignment)
			return err
		})
	},
		formField{label: "Title", value: a.Title},
		formField{label: "Description", value: a.Description},
		formField{label: "Course ID", value: courseID},
		formField{label: "Due (YYYY-MM-DD HH:MM)", value: due},
		formField{label: "Priority (low/medium/high)", value: string(priority)},
		formField{label: "Weight % (1-100)", value: strconv.Itoa(weight)},
		formField{label: "Grade % (blank if ungraded)", value: grade},
	)
}

func parseAssignmentForm(values []string) (models.Assignment, error) {
	courseID, err := strconv.ParseInt(values[2], 10, 64)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("course id: %w", err)
	}
	due, err := time.ParseInLocation("2006-01-02 15:04", values[3], time.Local)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("due date: %w", err)
	}
	weight, err := strconv.Atoi(values[5])
	if err != nil {
		return models.Assignment{}, fmt.Errorf("weight: %w", err)
	}
	a := models.Assignment{
		Title:       values[0],
		Description: values[1],
		CourseID:    courseID,
		DueDate:     due,
		Priority:    models.Priority(values[4]),
		Weight:      weight,
	}
	if values[6] != "" {
		grade, err := strconv.ParseFloat(values[6], 64)
		if err != nil {
			return models.Assignment{}, fmt.Errorf("grade: %w", err)
		}
		a.Grade = &grade
	}
	return a, nil
}
