package testutil

import (
	"sync"
	"time"

	"github.com/alexanderramin/workcounter/internal/domain"
	"github.com/google/uuid"
)

// Base is a fixed weekday morning used as the reference time in tests.
var Base = time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)

// FakeClock is a settable domain.Clock.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Ledger options
type LedgerOption func(*domain.Ledger)

// WithSession appends a completed session and adds it to the total.
func WithSession(start time.Time, d time.Duration) LedgerOption {
	return func(l *domain.Ledger) {
		l.Events = append(l.Events,
			domain.Event{ID: uuid.New().String(), Type: domain.EventIn, Time: start},
			domain.Event{ID: uuid.New().String(), Type: domain.EventOut, Time: start.Add(d)},
		)
		l.TotalWorked += d
	}
}

// WithOpenSession clocks the ledger in at start.
func WithOpenSession(start time.Time) LedgerOption {
	return func(l *domain.Ledger) {
		t := start
		l.ClockInTime = &t
		l.Events = append(l.Events, domain.Event{ID: uuid.New().String(), Type: domain.EventIn, Time: start})
	}
}

// WithTotal overrides the accumulated total.
func WithTotal(d time.Duration) LedgerOption {
	return func(l *domain.Ledger) {
		l.TotalWorked = d
	}
}

func NewTestLedger(opts ...LedgerOption) *domain.Ledger {
	l := &domain.Ledger{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
