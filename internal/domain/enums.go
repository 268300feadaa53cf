package domain

type EventType string

const (
	EventIn  EventType = "in"
	EventOut EventType = "out"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	return t == EventIn || t == EventOut
}

type ClockState string

const (
	StateIdle      ClockState = "idle"
	StateClockedIn ClockState = "clocked_in"
)
