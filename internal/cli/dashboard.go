package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/workcounter/internal/cli/formatter"
	"github.com/alexanderramin/workcounter/internal/domain"
	"github.com/alexanderramin/workcounter/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardLogLines is how many recent events the dashboard lists.
const dashboardLogLines = 10

const refreshInterval = time.Second

type dashboardKeyMap struct {
	ClockIn  key.Binding
	ClockOut key.Binding
	Exit     key.Binding
	Quit     key.Binding
}

func defaultDashboardKeys() dashboardKeyMap {
	return dashboardKeyMap{
		ClockIn:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "clock in")),
		ClockOut: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "clock out")),
		Exit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "exit time")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ClockIn, k.ClockOut, k.Exit, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ── messages ─────────────────────────────────────────────────────────────────

type tickMsg time.Time

type refreshMsg struct {
	status *service.Status
	events []domain.Event
	err    error
}

// actionMsg carries the result text of a button press.
type actionMsg struct {
	text string
	err  error
}

// dashboardModel is the live view: check-in line, result line, running
// timer and the recent log. It re-reads the status once per second.
type dashboardModel struct {
	ctx  context.Context
	app  *App
	keys dashboardKeyMap
	help help.Model

	status *service.Status
	events []domain.Event
	result string
	err    error
	loaded bool

	quitting bool
}

func newDashboardModel(ctx context.Context, app *App) dashboardModel {
	return dashboardModel{
		ctx:  ctx,
		app:  app,
		keys: defaultDashboardKeys(),
		help: help.New(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m dashboardModel) refresh() tea.Cmd {
	return func() tea.Msg {
		st, err := m.app.Clock.Status(m.ctx)
		if err != nil {
			return refreshMsg{err: err}
		}
		events, err := m.app.Clock.Events(m.ctx, dashboardLogLines)
		return refreshMsg{status: st, events: events, err: err}
	}
}

func (m dashboardModel) action(run func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		text, err := run()
		if err != nil {
			if msg, ok := userMessage(m.ctx, m.app, err); ok {
				return actionMsg{text: msg}
			}
			return actionMsg{err: err}
		}
		return actionMsg{text: text}
	}
}

func (m dashboardModel) clockIn() tea.Cmd {
	return m.action(func() (string, error) {
		if _, err := m.app.Clock.ClockIn(m.ctx); err != nil {
			return "", err
		}
		return formatter.CheckOutPlaceholder(), nil
	})
}

func (m dashboardModel) clockOut() tea.Cmd {
	return m.action(func() (string, error) {
		s, err := m.app.Clock.ClockOut(m.ctx)
		if err != nil {
			return "", err
		}
		return formatter.SessionSummary(s, m.app.Config.TimeFormat), nil
	})
}

func (m dashboardModel) projectExit() tea.Cmd {
	return m.action(func() (string, error) {
		p, err := m.app.Clock.ProjectExit(m.ctx, m.app.required())
		if err != nil {
			return "", err
		}
		return formatter.ProjectionSummary(p, m.app.Config.TimeFormat), nil
	})
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.refresh(), tick())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.ClockIn):
			return m, m.clockIn()
		case key.Matches(msg, m.keys.ClockOut):
			return m, m.clockOut()
		case key.Matches(msg, m.keys.Exit):
			return m, m.projectExit()
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.refresh(), tick())

	case refreshMsg:
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.status = msg.status
		m.events = msg.events
		if !m.loaded {
			m.loaded = true
			if msg.status.TotalWorked > 0 {
				m.result = formatter.TotalLabel(msg.status.TotalWorked)
			} else {
				m.result = formatter.CheckOutPlaceholder()
			}
		}
		return m, nil

	case actionMsg:
		m.err = msg.err
		if msg.err == nil {
			m.result = msg.text
		}
		return m, m.refresh()
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("WorkCounter") + "\n\n")

	if m.status == nil {
		b.WriteString(formatter.Dim("Loading…") + "\n")
	} else {
		layout := m.app.Config.TimeFormat
		b.WriteString(formatter.StatePill(m.status.State) + "\n")
		b.WriteString(formatter.CheckInLabel(m.status.ClockInTime, layout) + "\n")
		b.WriteString(m.result + "\n")
		b.WriteString(formatter.Bold(formatter.TimerLabel(m.status.Elapsed)) + "\n")
		b.WriteString(formatter.RenderWorkProgress(m.status.TotalWorked+m.status.Elapsed, m.app.required(), 24) + "\n\n")

		b.WriteString(formatter.Header("Log") + "\n")
		if len(m.events) == 0 {
			b.WriteString(formatter.Dim("No clock events yet.") + "\n")
		}
		for _, e := range m.events {
			b.WriteString(formatter.EventLine(e, layout) + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
