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
	"github.com/akyairhashvil/studyflow/internal/grades"
	"github.com/akyairhashvil/studyflow/internal/models"
)

func (m AppModel) handleCoursesKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.courseIdx > 0 {
			m.courseIdx--
		}
	case "down", "j":
		if m.courseIdx < len(m.courses)-1 {
			m.courseIdx++
		}
	case "enter":
		if len(m.courses) > 0 {
			m.showDetail = !m.showDetail
		}
	case "esc":
		m.showDetail = false
	case "n":
		m.form = m.newCourseForm(models.Course{}, false)
	case "e":
		if len(m.courses) > 0 {
			m.form = m.newCourseForm(m.courses[m.courseIdx], true)
		}
	case "d":
		if len(m.courses) > 0 {
			id := m.courses[m.courseIdx].ID
			m.showDetail = false
			return m, mutateCmd("Course deleted (assignments kept)", func(ctx context.Context) error {
				return m.store.DeleteCourse(ctx, id)
			})
		}
	case "r":
		return m, m.reportCmd()
	}
	return m, nil
}

func (m AppModel) viewCourses() string {
	if len(m.courses) == 0 {
		return CurrentTheme.Dim.Render("No courses yet. Press n to add your first course.")
	}
	if m.showDetail {
		return m.viewCourseDetail(m.courses[m.courseIdx])
	}

	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Courses"))
	b.WriteString("\n")
	for i, c := range m.courses {
		marker := "  "
		style := CurrentTheme.Item
		if i == m.courseIdx {
			marker = "> "
			style = CurrentTheme.Selected
		}
		summary := grades.Summarize(grades.ForCourse(c.ID, m.assignments))
		line := fmt.Sprintf("%s%s %s  %s  %d cr  avg %.1f%%",
			marker,
			CourseColorStyle(c.Color).Render("●"),
			style.Render(ansi.Truncate(c.Name, 30, "…")),
			CurrentTheme.Dim.Render(c.Code),
			c.Credits,
			summary.Average,
		)
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m AppModel) viewCourseDetail(c models.Course) string {
	courseAssignments := grades.ForCourse(c.ID, m.assignments)
	summary := grades.Summarize(courseAssignments)
	rate := grades.CompletionRate(courseAssignments)

	var b strings.Builder
	b.WriteString(CourseColorStyle(c.Color).Render("● ") + CurrentTheme.Header.Render(c.Name))
	b.WriteString(fmt.Sprintf("\n%s  %s  %d credits  %s\n",
		CurrentTheme.Dim.Render(c.Code), c.Instructor, c.Credits, c.Semester))

	for _, slot := range c.Schedule {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("  %s: %s", slot.Day, slot.Time)) + "\n")
	}

	b.WriteString(fmt.Sprintf("\nCurrent Average: %.1f%%   Completed Weight: %.0f%%   Remaining Weight: %.0f%%\n",
		summary.Average, summary.CompletedWeight, summary.RemainingWeight))
	b.WriteString(fmt.Sprintf("Completion: %.0f%%  %s\n\n", rate, m.progress.ViewAs(rate/100)))

	if len(courseAssignments) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No assignments yet for this course."))
		return b.String()
	}
	now := time.Now()
	for _, a := range courseAssignments {
		grade := "-"
		if a.Grade != nil {
			grade = fmt.Sprintf("%.0f%%", *a.Grade)
		}
		b.WriteString(fmt.Sprintf("%s  due %s  weight %d%%  grade %s\n",
			StatusStyle(a.Status).Render(ansi.Truncate(a.Title, 36, "…")),
			FormatDueDate(a.DueDate, now),
			a.Weight,
			grade,
		))
	}
	return b.String()
}

func (m AppModel) newCourseForm(c models.Course, editing bool) *formModel {
	title := "New Course"
	if editing {
		title = "Edit Course"
	}
	schedule := "Monday 10:00-11:30"
	if len(c.Schedule) > 0 {
		var parts []string
		for _, s := range c.Schedule {
			parts = append(parts, s.Day+" "+s.Time)
		}
		schedule = strings.Join(parts, ", ")
	}
	credits := config.DefaultCredits
	if c.Credits > 0 {
		credits = c.Credits
	}
	st := m.store
	id := c.ID
	createdAt := c.CreatedAt

	return newForm(title, func(values []string) tea.Cmd {
		course, err := parseCourseForm(values)
		if err != nil {
			return func() tea.Msg { return mutationDoneMsg{err: err} }
		}
		course.ID = id
		course.CreatedAt = createdAt
		if editing {
			return mutateCmd("Course updated", func(ctx context.Context) error {
				_, err := st.UpdateCourse(ctx, course)
				return err
			})
		}
		return mutateCmd("Course created", func(ctx context.Context) error {
			_, err := st.CreateCourse(ctx, course)
			return err
		})
	},
		formField{label: "Name", value: c.Name},
		formField{label: "Code", value: c.Code},
		formField{label: "Instructor", value: c.Instructor},
		formField{label: "Color (hex)", value: c.Color, placeholder: config.DefaultCourseColor},
		formField{label: "Credits (1-6)", value: strconv.Itoa(credits)},
		formField{label: "Semester", value: c.Semester, placeholder: config.Semesters[0]},
		formField{label: "Schedule (Day HH:MM-HH:MM, ...)", value: schedule},
	)
}

func parseCourseForm(values []string) (models.Course, error) {
	credits, err := strconv.Atoi(values[4])
	if err != nil {
		return models.Course{}, fmt.Errorf("credits: %w", err)
	}
	var schedule []models.ScheduleSlot
	for _, part := range strings.Split(values[6], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, timeRange, found := strings.Cut(part, " ")
		if !found {
			return models.Course{}, fmt.Errorf("schedule slot %q: want \"Day time-range\"", part)
		}
		schedule = append(schedule, models.ScheduleSlot{Day: day, Time: timeRange})
	}
	return models.Course{
		Name:       values[0],
		Code:       values[1],
		Instructor: values[2],
		Color:      values[3],
		Credits:    credits,
		Semester:   values[5],
		Schedule:   schedule,
	}, nil
}
