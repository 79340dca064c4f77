package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/studyflow/internal/config"
	"github.com/akyairhashvil/studyflow/internal/models"
	"github.com/akyairhashvil/studyflow/internal/store"
	"github.com/akyairhashvil/studyflow/internal/timer"
)

// TickMsg drives the one-second timer loop. A single recurring tick is
// in flight at any time; handlers re-arm it exactly once per receipt.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// dataLoadedMsg carries every collection a screen needs. List failures
// degrade to empty slices so views render an empty state instead of
// crashing; the failure text lands in Warnings.
type dataLoadedMsg struct {
	courses     []models.Course
	assignments []models.Assignment
	students    []models.Student
	sessions    []models.StudySession
	warnings    []string
}

func loadDataCmd(st store.Store) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var msg dataLoadedMsg
		warn := func(err error) {
			if err != nil {
				msg.warnings = append(msg.warnings, err.Error())
			}
		}
		var err error
		msg.courses, err = st.ListCourses(ctx)
		warn(err)
		msg.assignments, err = st.ListAssignments(ctx)
		warn(err)
		msg.students, err = st.ListStudents(ctx)
		warn(err)
		msg.sessions, err = st.ListSessions(ctx)
		warn(err)
		return msg
	}
}

// sessionSavedMsg reports the fire-and-report persistence of a
// completed study session.
type sessionSavedMsg struct {
	session models.StudySession
	err     error
}

func saveSessionCmd(st store.Store, s timer.Session) tea.Cmd {
	return func() tea.Msg {
		created, err := st.CreateSession(context.Background(), models.StudySession{
			StartTime: s.Start,
			EndTime:   s.End,
		})
		return sessionSavedMsg{session: created, err: err}
	}
}

// mutationDoneMsg reports any create/update/delete, after which the
// collections are reloaded.
type mutationDoneMsg struct {
	status string
	err    error
}

func mutateCmd(status string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{status: status, err: fn(context.Background())}
	}
}

// reportDoneMsg reports PDF generation.
type reportDoneMsg struct {
	path string
	err  error
}

func (m dataLoadedMsg) warningText() string {
	if len(m.warnings) == 0 {
		return ""
	}
	return "load: " + strings.Join(m.warnings, "; ")
}
