package config

import "time"

// Timer settings.
const (
	TickInterval       = time.Second
	DefaultDurationMin = 25
	MinDurationMin     = 1
	MaxDurationHintMin = 120 // form hint only, the state machine enforces no ceiling
	SessionHistorySize = 10
)

// Course defaults.
const (
	DefaultCourseColor = "#6366f1"
	DefaultCredits     = 3
	DefaultWeight      = 10
)

// Semesters is the fixed label set offered by the course form.
var Semesters = []string{
	"Fall 2024",
	"Spring 2025",
	"Summer 2025",
	"Fall 2025",
	"Spring 2026",
}

// Dashboard settings.
const (
	UpcomingLimit = 5
	GPAScale      = 4.0
)

// Database/application settings.
const (
	AppName    = "studyflow"
	DBFileName = "studyflow.db"
)
