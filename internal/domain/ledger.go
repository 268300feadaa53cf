package domain

import (
	"fmt"
	"time"
)

// DefaultRequired is the daily work time used when no other value is configured.
const DefaultRequired = 8*time.Hour + 30*time.Minute

// rolloverCorrection is added to a negative session duration. Timestamps that
// went backwards are assumed to have wrapped past local midnight; sessions
// longer than a day are not detected.
const rolloverCorrection = 24 * time.Hour

// Ledger is the persisted clock state: the open clock-in (if any), the
// chronological event log and the accumulated worked time.
type Ledger struct {
	ClockInTime *time.Time
	Events      []Event
	TotalWorked time.Duration
}

// State derives the clock state from the presence of ClockInTime.
func (l *Ledger) State() ClockState {
	if l.ClockInTime != nil {
		return StateClockedIn
	}
	return StateIdle
}

// ClockIn opens a session at now. Only one session may be open at a time.
func (l *Ledger) ClockIn(now time.Time, eventID string) error {
	if l.ClockInTime != nil {
		return ErrAlreadyClockedIn
	}
	t := now
	l.ClockInTime = &t
	l.Events = append(l.Events, Event{ID: eventID, Type: EventIn, Time: now})
	return nil
}

// ClockOut closes the open session at now and adds its duration to the total.
func (l *Ledger) ClockOut(now time.Time, eventID string) (*Session, error) {
	if l.ClockInTime == nil {
		return nil, ErrNotClockedIn
	}
	start := *l.ClockInTime
	worked := SessionDuration(start, now)

	l.Events = append(l.Events, Event{ID: eventID, Type: EventOut, Time: now})
	l.TotalWorked += worked
	l.ClockInTime = nil

	return &Session{
		Start:       start,
		End:         now,
		Duration:    worked,
		TotalWorked: l.TotalWorked,
	}, nil
}

// ElapsedSinceClockIn returns the running time of the open session, or zero
// when idle.
func (l *Ledger) ElapsedSinceClockIn(now time.Time) time.Duration {
	if l.ClockInTime == nil {
		return 0
	}
	return SessionDuration(*l.ClockInTime, now)
}

// ProjectedExit computes when the open session reaches the required total.
// ErrAlreadyMet takes precedence over ErrNotClockedIn.
func (l *Ledger) ProjectedExit(required time.Duration) (*Projection, error) {
	if l.TotalWorked >= required {
		return nil, ErrAlreadyMet
	}
	if l.ClockInTime == nil {
		return nil, ErrNotClockedIn
	}
	remaining := required - l.TotalWorked
	return &Projection{
		Remaining: remaining,
		ExitAt:    l.ClockInTime.Add(remaining),
	}, nil
}

// LastEvent returns the most recent log entry, or nil for an empty log.
func (l *Ledger) LastEvent() *Event {
	if len(l.Events) == 0 {
		return nil
	}
	return &l.Events[len(l.Events)-1]
}

// Sessions pairs the event log into completed sessions, oldest first.
// TotalWorked on each session is the running sum over the log. An out with no
// preceding in is skipped and a trailing in is not included.
func (l *Ledger) Sessions() []Session {
	var sessions []Session
	var start *time.Time
	var running time.Duration
	for _, e := range l.Events {
		switch e.Type {
		case EventIn:
			t := e.Time
			start = &t
		case EventOut:
			if start == nil {
				continue
			}
			d := SessionDuration(*start, e.Time)
			running += d
			sessions = append(sessions, Session{Start: *start, End: e.Time, Duration: d, TotalWorked: running})
			start = nil
		}
	}
	return sessions
}

// SessionDuration returns end - start, adding a day when the result is negative.
func SessionDuration(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < 0 {
		d += rolloverCorrection
	}
	return d
}

// FormatInterval renders d as "Hh Mm Ss", truncating each component.
func FormatInterval(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
