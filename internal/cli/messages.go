package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/workcounter/internal/cli/formatter"
	"github.com/alexanderramin/workcounter/internal/domain"
)

// userMessage maps clock errors to the status text shown to the user. ok is
// false for errors that are not part of normal use.
func userMessage(ctx context.Context, app *App, err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrNotClockedIn):
		return "You need to clock in first.", true
	case errors.Is(err, domain.ErrAlreadyMet):
		return "You have already met the required work hours.", true
	case errors.Is(err, domain.ErrAlreadyClockedIn):
		if st, stErr := app.Clock.Status(ctx); stErr == nil && st.ClockInTime != nil {
			return "Already " + formatter.CheckInLabel(st.ClockInTime, app.Config.TimeFormat) + ".", true
		}
		return "You are already clocked in.", true
	}
	return "", false
}
