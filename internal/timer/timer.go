// Package timer implements the study session countdown state machine.
// The machine is UI-independent: the caller drives it with one Tick per
// second and decides what to do with the completed session.
package timer

import (
	"fmt"
	"time"
)

// State is the lifecycle position of a countdown.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

// Session is the wall-clock bracket of a finished countdown. End-Start
// includes paused intervals; the recorded duration reflects real
// elapsed time, not the configured countdown.
type Session struct {
	Start time.Time
	End   time.Time
}

// Countdown counts a configured number of seconds down to zero,
// decrementing only while Running. A stale tick arriving after Stop is
// harmless: Tick is a no-op outside Running.
type Countdown struct {
	state     State
	duration  int // configured seconds
	remaining int
	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time
}

func New() *Countdown {
	return &Countdown{now: time.Now}
}

// NewWithClock injects a clock for deterministic tests.
func NewWithClock(now func() time.Time) *Countdown {
	return &Countdown{now: now}
}

// Start begins a countdown of minutes*60 seconds. Only valid from Idle.
// There is no upper bound on minutes here; the form suggests one.
func (c *Countdown) Start(minutes int) error {
	if c.state != Idle {
		return fmt.Errorf("timer: cannot start while %s", c.state)
	}
	if minutes < 1 {
		return fmt.Errorf("timer: duration must be at least 1 minute, got %d", minutes)
	}
	c.duration = minutes * 60
	c.remaining = c.duration
	c.startedAt = c.now()
	c.endedAt = time.Time{}
	c.state = Running
	return nil
}

// Pause halts the per-second decrement. Time keeps passing on the wall
// clock; the eventual session duration includes it.
func (c *Countdown) Pause() error {
	if c.state != Running {
		return fmt.Errorf("timer: cannot pause while %s", c.state)
	}
	c.state = Paused
	return nil
}

func (c *Countdown) Resume() error {
	if c.state != Paused {
		return fmt.Errorf("timer: cannot resume while %s", c.state)
	}
	c.state = Running
	return nil
}

// Stop abandons the countdown without recording anything.
func (c *Countdown) Stop() error {
	if c.state != Running && c.state != Paused {
		return fmt.Errorf("timer: cannot stop while %s", c.state)
	}
	*c = Countdown{now: c.now}
	return nil
}

// Tick applies one second. It decrements only in Running and reports
// true exactly once, on the transition to Completed.
func (c *Countdown) Tick() bool {
	if c.state != Running {
		return false
	}
	c.remaining--
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.endedAt = c.now()
	c.state = Completed
	return true
}

// Session returns the recorded bracket. Valid only in Completed.
func (c *Countdown) Session() (Session, bool) {
	if c.state != Completed {
		return Session{}, false
	}
	return Session{Start: c.startedAt, End: c.endedAt}, true
}

// Reset returns to Idle after the completed session has been handed
// off. The caller resets regardless of whether persisting the session
// succeeded: sessions are fire-and-report, never requeued.
func (c *Countdown) Reset() {
	*c = Countdown{now: c.now}
}

func (c *Countdown) State() State   { return c.state }
func (c *Countdown) Remaining() int { return c.remaining }
func (c *Countdown) Duration() int  { return c.duration }

// Progress is the completed fraction in [0,1] for the progress bar.
func (c *Countdown) Progress() float64 {
	if c.duration == 0 {
		return 0
	}
	return float64(c.duration-c.remaining) / float64(c.duration)
}
