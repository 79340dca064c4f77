package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/studyflow/internal/config"
	"github.com/akyairhashvil/studyflow/internal/grades"
	"github.com/akyairhashvil/studyflow/internal/models"
	"github.com/akyairhashvil/studyflow/internal/util"
)

// reportCmd renders the semester report PDF: one section per course
// with its weighted average and completion figures, then the overall
// GPA. The file lands in the user's reports directory.
func (m AppModel) reportCmd() tea.Cmd {
	courses := m.courses
	assignments := m.assignments
	return func() tea.Msg {
		path, err := writeSemesterReport(courses, assignments)
		return reportDoneMsg{path: path, err: err}
	}
}

func writeSemesterReport(courses []models.Course, assignments []models.Assignment) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Semester Report: %s", time.Now().Format("January 2, 2006")))
	pdf.Ln(12)

	for _, c := range courses {
		cas := grades.ForCourse(c.ID, assignments)
		summary := grades.Summarize(cas)
		rate := grades.CompletionRate(cas)

		pdf.SetFont("Arial", "B", 14)
		header := fmt.Sprintf("%s (%s)", c.Name, c.Code)
		if c.Code == "" {
			header = c.Name
		}
		pdf.Cell(0, 10, header)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		if len(cas) == 0 {
			pdf.Cell(0, 8, "  - No assignments yet.")
			pdf.Ln(8)
			continue
		}
		pdf.Cell(0, 8, fmt.Sprintf("  Average: %.1f%%", summary.Average))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("  Weight completed: %.0f%%  remaining: %.0f%%", summary.CompletedWeight, summary.RemainingWeight))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("  Assignments completed: %.0f%%", rate))
		pdf.Ln(6)

		for _, a := range cas {
			status := "[ ]"
			if a.Completed() {
				status = "[x]"
			}
			line := fmt.Sprintf("  %s %s (w%d, due %s)", status, a.Title, a.Weight, a.DueDate.Format("Jan 2"))
			if a.Grade != nil {
				line += fmt.Sprintf(" - %.0f%%", *a.Grade)
			}
			pdf.Cell(0, 8, line)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Overall GPA: %.2f / %.1f", grades.GPA(assignments), config.GPAScale))

	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("semester_report_%s.pdf", time.Now().Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}
