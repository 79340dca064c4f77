package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formModel is the one modal used by every CRUD screen: a stack of
// labeled inputs, ctrl+s (or enter on the last field) submits, esc
// cancels. The page that opened the form supplies a submit closure
// that parses the raw values and returns the store mutation command.
type formModel struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	submit func(values []string) tea.Cmd
}

func newForm(title string, submit func(values []string) tea.Cmd, fields ...formField) *formModel {
	f := &formModel{title: title, submit: submit}
	for i, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.placeholder
		ti.SetValue(field.value)
		ti.CharLimit = 120
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, ti)
	}
	return f
}

type formField struct {
	label       string
	placeholder string
	value       string
}

func (m AppModel) handleFormKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	f := m.form
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "ctrl+s":
		return m.submitForm()
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return m.submitForm()
		}
		f.setFocus(f.focus + 1)
		return m, nil
	case "down":
		f.setFocus((f.focus + 1) % len(f.inputs))
		return m, nil
	case "up":
		f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
		return m, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m AppModel) submitForm() (AppModel, tea.Cmd) {
	f := m.form
	values := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		values[i] = strings.TrimSpace(in.Value())
	}
	cmd := f.submit(values)
	m.form = nil
	return m, cmd
}

func (f *formModel) setFocus(idx int) {
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
}

func (f *formModel) View() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render(f.title))
	b.WriteString("\n\n")
	for i := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			label = CurrentTheme.Selected.Render("> " + label)
		} else {
			label = CurrentTheme.Dim.Render("  " + label)
		}
		b.WriteString(label + "\n" + f.inputs[i].View() + "\n")
	}
	b.WriteString("\n" + CurrentTheme.Dim.Render("enter/ctrl+s: save  esc: cancel"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(1, 2).
		Render(b.String())
}
