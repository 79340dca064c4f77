package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/studyflow/internal/models"
	"github.com/akyairhashvil/studyflow/internal/planner"
	"github.com/akyairhashvil/studyflow/internal/store"
	"github.com/akyairhashvil/studyflow/internal/timer"
	"github.com/akyairhashvil/studyflow/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
)

var AppVersion = "0"

type page int

const (
	pageDashboard page = iota
	pageCourses
	pageAssignments
	pageCalendar
	pageTimer
	pageStudents
)

var pageNames = []string{"Dashboard", "Courses", "Assignments", "Calendar", "Timer", "Students"}

// AppModel is the root bubbletea model: one store handle, the shared
// entity collections, and per-page view state. All derived views
// (grade summaries, filtered lists, calendar buckets) are recomputed
// from the collections on render; nothing mutates them in place.
type AppModel struct {
	store store.Store
	page  page

	courses     []models.Course
	assignments []models.Assignment
	students    []models.Student
	sessions    []models.StudySession

	countdown     *timer.Countdown
	durationInput textinput.Model
	progress      progress.Model

	filter        planner.Filter
	searchInput   textinput.Model
	searching     bool
	assignmentIdx int

	courseIdx  int
	showDetail bool

	calMonth time.Time

	studentIdx int

	form *formModel

	status        string
	width, height int
}

func NewAppModel(st store.Store) AppModel {
	di := textinput.New()
	di.Placeholder = "25"
	di.CharLimit = 3
	di.Width = 5
	si := textinput.New()
	si.Placeholder = "Search assignments..."
	si.Width = 30

	m := AppModel{
		store:         st,
		countdown:     timer.New(),
		durationInput: di,
		searchInput:   si,
		progress:      progress.New(progress.WithDefaultGradient()),
		calMonth:      time.Now(),
	}
	m.progress.Width = 40
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(loadDataCmd(m.store), tickCmd())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.width > 0 {
			m.progress.Width = util.Clamp(m.width-20, 10, 40)
		}
		return m, nil

	case TickMsg:
		next, cmd := m.handleTick(msg)
		return next, cmd

	case dataLoadedMsg:
		m.courses = msg.courses
		m.assignments = msg.assignments
		m.students = msg.students
		m.sessions = msg.sessions
		if w := msg.warningText(); w != "" {
			m.status = w
		}
		m.clampSelections()
		return m, nil

	case sessionSavedMsg:
		if msg.err != nil {
			m.status = "Failed to save session: " + msg.err.Error()
			return m, nil
		}
		m.status = "Study session completed! Great work!"
		return m, loadDataCmd(m.store)

	case mutationDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		return m, loadDataCmd(m.store)

	case reportDoneMsg:
		if msg.err != nil {
			m.status = "Report failed: " + msg.err.Error()
		} else {
			m.status = "Report written to " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		return next, cmd
	}
	return m, nil
}

// handleTick advances the countdown by one second and, exactly on the
// completion transition, hands the session bracket to the store. The
// machine returns to idle immediately; persistence failures only
// surface a status message (fire-and-report).
func (m AppModel) handleTick(_ TickMsg) (AppModel, tea.Cmd) {
	if m.countdown.Tick() {
		sess, ok := m.countdown.Session()
		m.countdown.Reset()
		if ok {
			return m, tea.Batch(tickCmd(), saveSessionCmd(m.store, sess))
		}
	}
	return m, tickCmd()
}

func (m AppModel) handleKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	if m.form != nil {
		return m.handleFormKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.page = (m.page + 1) % page(len(pageNames))
		m.status = ""
		return m, nil
	case "shift+tab":
		m.page = (m.page + page(len(pageNames)) - 1) % page(len(pageNames))
		m.status = ""
		return m, nil
	case "ctrl+t":
		if CurrentTheme.Name == Themes["default"].Name {
			SetTheme("dracula")
		} else {
			SetTheme("default")
		}
		m.status = "Theme: " + CurrentTheme.Name
		return m, nil
	}

	switch m.page {
	case pageCourses:
		return m.handleCoursesKey(msg)
	case pageAssignments:
		return m.handleAssignmentsKey(msg)
	case pageCalendar:
		return m.handleCalendarKey(msg)
	case pageTimer:
		return m.handleTimerKey(msg)
	case pageStudents:
		return m.handleStudentsKey(msg)
	default:
		return m, nil
	}
}

func (m AppModel) View() string {
	var body string
	switch m.page {
	case pageCourses:
		body = m.viewCourses()
	case pageAssignments:
		body = m.viewAssignments()
	case pageCalendar:
		body = m.viewCalendar()
	case pageTimer:
		body = m.viewTimer()
	case pageStudents:
		body = m.viewStudents()
	default:
		body = m.viewDashboard()
	}

	if m.form != nil {
		body = m.form.View()
	}

	return CurrentTheme.Base.Render(
		lipgloss.JoinVertical(lipgloss.Left, m.viewTabs(), body, m.viewFooter()),
	)
}

func (m AppModel) viewTabs() string {
	var tabs []string
	for i, name := range pageNames {
		if page(i) == m.page {
			tabs = append(tabs, CurrentTheme.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, CurrentTheme.Tab.Render(name))
		}
	}
	tabs = append(tabs, CurrentTheme.Dim.Render(" v"+AppVersion))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m AppModel) viewFooter() string {
	help := "tab: switch  ctrl+t: theme  q: quit"
	switch m.page {
	case pageCourses:
		help = "↑/↓ select  enter: detail  n: new  e: edit  d: delete  r: report  tab: switch  q: quit"
	case pageAssignments:
		help = "↑/↓ select  space: toggle  /: search  c/s/p: filters  n: new  e: edit  d: delete  q: quit"
	case pageCalendar:
		help = "←/→ month  t: today  tab: switch  q: quit"
	case pageTimer:
		help = "s: start  p: pause/resume  x: stop  tab: switch  q: quit"
	case pageStudents:
		help = "↑/↓ select  n: new  e: edit  d: delete  tab: switch  q: quit"
	}
	line := CurrentTheme.Dim.Render(help)
	if m.status != "" {
		line = CurrentTheme.Highlight.Render(m.status) + "\n" + line
	}
	return line
}

// clampSelections keeps list cursors valid after a reload shrinks a
// collection.
func (m *AppModel) clampSelections() {
	if m.courseIdx >= len(m.courses) {
		m.courseIdx = max(0, len(m.courses)-1)
	}
	if m.studentIdx >= len(m.students) {
		m.studentIdx = max(0, len(m.students)-1)
	}
	visible := len(m.visibleAssignments())
	if m.assignmentIdx >= visible {
		m.assignmentIdx = max(0, visible-1)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
