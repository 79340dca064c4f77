package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/studyflow/internal/config"
	"github.com/akyairhashvil/studyflow/internal/timer"
)

func (m AppModel) handleTimerKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	if m.durationInput.Focused() {
		switch msg.String() {
		case "enter":
			m.durationInput.Blur()
			return m.startCountdown()
		case "esc":
			m.durationInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.durationInput, cmd = m.durationInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "s":
		if m.countdown.State() == timer.Idle {
			m.durationInput.SetValue(strconv.Itoa(config.DefaultDurationMin))
			m.durationInput.Focus()
		}
	case "p":
		switch m.countdown.State() {
		case timer.Running:
			if err := m.countdown.Pause(); err == nil {
				m.status = "Session paused"
			}
		case timer.Paused:
			if err := m.countdown.Resume(); err == nil {
				m.status = "Session resumed"
			}
		}
	case "x":
		if err := m.countdown.Stop(); err == nil {
			m.status = "Session stopped"
		}
	}
	return m, nil
}

// startCountdown reads the duration field, clamping anything below the
// minimum up to it. The state machine itself rejects nothing above the
// minimum; 120 is only a form suggestion.
func (m AppModel) startCountdown() (AppModel, tea.Cmd) {
	minutes, err := strconv.Atoi(strings.TrimSpace(m.durationInput.Value()))
	if err != nil {
		m.status = "Duration must be a number of minutes"
		return m, nil
	}
	if minutes < config.MinDurationMin {
		minutes = config.MinDurationMin
	}
	if err := m.countdown.Start(minutes); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = "Study session started!"
	return m, nil
}

func (m AppModel) viewTimer() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Study Timer"))
	b.WriteString("\n\n")

	state := m.countdown.State()
	switch state {
	case timer.Idle:
		b.WriteString(FormatCountdown(config.DefaultDurationMin*60) + "  " + CurrentTheme.Dim.Render("Ready to start"))
		b.WriteString("\n")
		if m.durationInput.Focused() {
			b.WriteString(fmt.Sprintf("Duration (minutes, %d-%d): %s\n",
				config.MinDurationMin, config.MaxDurationHintMin, m.durationInput.View()))
		}
	default:
		label := "In Progress"
		if state == timer.Paused {
			label = "Paused"
		}
		b.WriteString(CurrentTheme.Selected.Render(FormatCountdown(m.countdown.Remaining())))
		b.WriteString("  " + CurrentTheme.Dim.Render(label) + "\n")
		b.WriteString(m.progress.ViewAs(m.countdown.Progress()) + "\n")
	}

	b.WriteString("\n" + CurrentTheme.Header.Render("Recent Sessions") + "\n")
	if len(m.sessions) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No sessions yet. Start your first study session!"))
		return b.String()
	}
	history := m.sessions
	if len(history) > config.SessionHistorySize {
		history = history[:config.SessionHistorySize]
	}
	for _, s := range history {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			CurrentTheme.Item.Render(s.EndTime.Format("Jan 2 15:04")),
			CurrentTheme.Dim.Render(FormatSessionLength(s.DurationSeconds)),
		))
	}
	return b.String()
}
