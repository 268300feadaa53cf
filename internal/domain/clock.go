package domain

import "time"

// Clock provides the current time; tests substitute a fixed one.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
