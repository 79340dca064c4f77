package config

import "testing"

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if DefaultDurationMin < MinDurationMin {
		t.Fatalf("default duration below the minimum")
	}
	if SessionHistorySize <= 0 {
		t.Fatalf("SessionHistorySize must be positive")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if UpcomingLimit <= 0 {
		t.Fatalf("UpcomingLimit must be positive")
	}
	if GPAScale != 4.0 {
		t.Fatalf("unexpected GPA scale %v", GPAScale)
	}
	if len(Semesters) == 0 {
		t.Fatalf("Semesters should offer at least one label")
	}
}
