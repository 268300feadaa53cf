package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTimeLayout matches the 12-hour "03:04 PM" style of the log.
const DefaultTimeLayout = "03:04 PM"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// ClockTime formats t with layout, falling back to DefaultTimeLayout.
func ClockTime(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return t.Local().Format(layout)
}

// DayLabel returns "Today", "Yesterday" or a short date for t relative to now.
func DayLabel(t, now time.Time) string {
	t, now = t.Local(), now.Local()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Mon Jan 2")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if id == "" {
		return StyleDim.Render("--")
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
