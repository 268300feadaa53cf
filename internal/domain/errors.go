package domain

import "errors"

var (
	// ErrNotClockedIn is returned when an operation needs an open session.
	ErrNotClockedIn = errors.New("not clocked in")

	// ErrAlreadyClockedIn is returned by ClockIn while a session is open.
	ErrAlreadyClockedIn = errors.New("already clocked in")

	// ErrAlreadyMet is returned by ProjectedExit when the worked total
	// already covers the required duration.
	ErrAlreadyMet = errors.New("required work time already met")
)
