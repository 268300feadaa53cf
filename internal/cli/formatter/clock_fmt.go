package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/workcounter/internal/domain"
)

const notAvailable = "Not available"

// CheckInLabel is the check-in line: the open clock-in time or "Not available".
func CheckInLabel(clockIn *time.Time, layout string) string {
	if clockIn == nil {
		return "Check-in Time: " + notAvailable
	}
	return "Clocked in at " + ClockTime(*clockIn, layout)
}

// CheckOutPlaceholder is shown before any clock-out result is available.
func CheckOutPlaceholder() string {
	return "Check-out Time: " + notAvailable
}

func TimerLabel(elapsed time.Duration) string {
	return "Time since clock-in: " + domain.FormatInterval(elapsed)
}

func TotalLabel(total time.Duration) string {
	return "Total worked time: " + domain.FormatInterval(total)
}

// SessionSummary describes a finished session.
func SessionSummary(s *domain.Session, layout string) string {
	return strings.Join([]string{
		"Clocked out at " + ClockTime(s.End, layout),
		"Worked this session: " + domain.FormatInterval(s.Duration),
		TotalLabel(s.TotalWorked),
	}, "\n")
}

// ProjectionSummary describes the remaining work and the expected exit time.
func ProjectionSummary(p *domain.Projection, layout string) string {
	return fmt.Sprintf("Remaining time to work: %s\nExpected exit time: %s",
		domain.FormatInterval(p.Remaining), ClockTime(p.ExitAt, layout))
}

// EventLine renders one log entry, e.g. "Clocked in at 09:00 AM".
func EventLine(e domain.Event, layout string) string {
	verb := "Clocked out"
	if e.Type == domain.EventIn {
		verb = "Clocked in"
	}
	return verb + " at " + ClockTime(e.Time, layout)
}

// RenderEventTable lists events oldest first. offset is the log position of
// the first event, so numbering stays stable when the list is truncated.
func RenderEventTable(events []domain.Event, offset int, layout string, now time.Time) string {
	headers := []string{"#", "ID", "EVENT", "DAY", "TIME"}
	rows := make([][]string, 0, len(events))
	for i, e := range events {
		rows = append(rows, []string{
			Dim(strconv.Itoa(offset + i + 1)),
			TruncID(e.ID),
			EventPill(e.Type),
			DayLabel(e.Time, now),
			ClockTime(e.Time, layout),
		})
	}
	return RenderTable(headers, rows)
}

// StatusView is the input of RenderStatus.
type StatusView struct {
	State       domain.ClockState
	ClockInTime *time.Time
	Elapsed     time.Duration
	TotalWorked time.Duration
	Required    time.Duration
	Layout      string
}

// RenderStatus renders the status block used by the status command.
func RenderStatus(v StatusView) string {
	var b strings.Builder
	b.WriteString(StatePill(v.State) + "\n\n")
	b.WriteString(CheckInLabel(v.ClockInTime, v.Layout) + "\n")
	b.WriteString(TimerLabel(v.Elapsed) + "\n")
	b.WriteString(TotalLabel(v.TotalWorked) + "\n\n")

	// The open session counts towards today's progress.
	worked := v.TotalWorked + v.Elapsed
	b.WriteString(RenderWorkProgress(worked, v.Required, 24))
	b.WriteString(Dim(" of " + domain.FormatInterval(v.Required)))
	return RenderBox("WorkCounter", b.String())
}
