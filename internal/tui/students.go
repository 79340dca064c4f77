package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/studyflow/internal/models"
)

func (m AppModel) handleStudentsKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.studentIdx > 0 {
			m.studentIdx--
		}
	case "down", "j":
		if m.studentIdx < len(m.students)-1 {
			m.studentIdx++
		}
	case "n":
		m.form = m.newStudentForm(models.Student{}, false)
	case "e":
		if len(m.students) > 0 {
			m.form = m.newStudentForm(m.students[m.studentIdx], true)
		}
	case "d":
		if len(m.students) > 0 {
			id := m.students[m.studentIdx].ID
			return m, mutateCmd("Student deleted", func(ctx context.Context) error {
				return m.store.DeleteStudent(ctx, id)
			})
		}
	}
	return m, nil
}

func (m AppModel) viewStudents() string {
	if len(m.students) == 0 {
		return CurrentTheme.Dim.Render("No students yet. Press n to add one.")
	}
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Students"))
	b.WriteString("\n")
	for i, s := range m.students {
		marker := "  "
		style := CurrentTheme.Item
		if i == m.studentIdx {
			marker = "> "
			style = CurrentTheme.Selected
		}
		year := "-"
		if s.Year > 0 {
			year = fmt.Sprintf("Y%d", s.Year)
		}
		gpa := "-"
		if s.GPA != nil {
			gpa = fmt.Sprintf("%.2f", *s.GPA)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s  %s  GPA %s\n",
			marker,
			style.Render(ansi.Truncate(s.Name, 24, "…")),
			CurrentTheme.Dim.Render(s.Email),
			ansi.Truncate(s.Major, 20, "…"),
			year,
			gpa,
		))
	}
	return b.String()
}

func (m AppModel) newStudentForm(s models.Student, editing bool) *formModel {
	title := "New Student"
	if editing {
		title = "Edit Student"
	}
	year := ""
	if s.Year > 0 {
		year = strconv.Itoa(s.Year)
	}
	gpa := ""
	if s.GPA != nil {
		gpa = strconv.FormatFloat(*s.GPA, 'f', 2, 64)
	}
	enrolled := ""
	if !s.EnrollmentDate.IsZero() {
		enrolled = s.EnrollmentDate.Format("2006-01-02")
	}
	st := m.store
	id := s.ID

	return newForm(title, func(values []string) tea.Cmd {
		student, err := parseStudentForm(values)
		if err != nil {
			return func() tea.Msg { return mutationDoneMsg{err: err} }
		}
		student.ID = id
		if editing {
			return mutateCmd("Student updated", func(ctx context.Context) error {
				_, err := st.UpdateStudent(ctx, student)
				return err
			})
		}
		return mutateCmd("Student created", func(ctx context.Context) error {
			_, err := st.CreateStudent(ctx, student)
			return err
		})
	},
		formField{label: "Name", value: s.Name},
		formField{label: "Email", value: s.Email, placeholder: "name@university.edu"},
		formField{label: "Phone", value: s.Phone},
		formField{label: "Major", value: s.Major},
		formField{label: "Year (1-4, blank if unset)", value: year},
		formField{label: "GPA (0-4, blank if unset)", value: gpa},
		formField{label: "Enrolled (YYYY-MM-DD, blank if unset)", value: enrolled},
	)
}

func parseStudentForm(values []string) (models.Student, error) {
	s := models.Student{
		Name:  values[0],
		Email: values[1],
		Phone: values[2],
		Major: values[3],
	}
	if values[4] != "" {
		year, err := strconv.Atoi(values[4])
		if err != nil {
			return models.Student{}, fmt.Errorf("year: %w", err)
		}
		s.Year = year
	}
	if values[5] != "" {
		gpa, err := strconv.ParseFloat(values[5], 64)
		if err != nil {
			return models.Student{}, fmt.Errorf("gpa: %w", err)
		}
		s.GPA = &gpa
	}
	if values[6] != "" {
		enrolled, err := time.ParseInLocation("2006-01-02", values[6], time.Local)
		if err != nil {
			return models.Student{}, fmt.Errorf("enrollment date: %w", err)
		}
		s.EnrollmentDate = enrolled
	}
	return s, nil
}
