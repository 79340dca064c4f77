package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/studyflow/internal/models"
)

type Theme struct {
	Name        string
	Base        lipgloss.Style
	Border      lipgloss.Color
	Header      lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Item        lipgloss.Style
	DoneItem    lipgloss.Style
	Selected    lipgloss.Style
	StatCard    lipgloss.Style
	Input       lipgloss.Style
	Dim         lipgloss.Style
	Highlight   lipgloss.Style
	ErrorText   lipgloss.Style
	Overdue     lipgloss.Style
	DueToday    lipgloss.Style
	DueTomorrow lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("63"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1).Underline(true),
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DoneItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		StatCard:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 2),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		ErrorText:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Overdue:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		DueToday:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		DueTomorrow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	},
	"dracula": {
		Name:        "Dracula",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("62"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Padding(0, 1).Underline(true),
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		DoneItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		StatCard:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 2),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		ErrorText:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Overdue:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		DueToday:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		DueTomorrow: lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// PriorityStyle is a closed lookup table: the data model's priority
// enum maps to a fixed style, never a dynamic variant string.
func PriorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return CurrentTheme.Overdue
	case models.PriorityMedium:
		return CurrentTheme.DueToday
	default:
		return CurrentTheme.Dim
	}
}

// StatusStyle maps the status enum to a fixed style.
func StatusStyle(s models.AssignmentStatus) lipgloss.Style {
	if s == models.StatusCompleted {
		return CurrentTheme.DoneItem
	}
	return CurrentTheme.Item
}

// courseColorStyle approximates the stored hex color with the nearest
// entry of a fixed ANSI table. Unknown or missing colors fall back to
// the default indigo.
var courseColorTable = map[string]string{
	"#6366f1": "63",  // indigo
	"#8b5cf6": "135", // violet
	"#ec4899": "205", // pink
	"#ef4444": "196", // red
	"#f59e0b": "214", // amber
	"#10b981": "42",  // emerald
	"#06b6d4": "45",  // cyan
	"#3b82f6": "33",  // blue
}

func CourseColorStyle(hex string) lipgloss.Style {
	code, ok := courseColorTable[strings.ToLower(hex)]
	if !ok {
		code = courseColorTable["#6366f1"]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}
