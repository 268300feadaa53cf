package domain

import "time"

// Event is one entry of the clock log.
type Event struct {
	ID   string
	Type EventType
	Time time.Time
}

// Session is a completed clock-in/clock-out pair.
type Session struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration

	// TotalWorked is the ledger total after the session was added.
	TotalWorked time.Duration
}

// Projection is the outcome of an exit-time calculation.
type Projection struct {
	Remaining time.Duration
	ExitAt    time.Time
}
