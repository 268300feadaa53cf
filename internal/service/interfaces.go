package service

import (
	"context"
	"time"

	"github.com/alexanderramin/workcounter/internal/domain"
)

// Status is a point-in-time view of the ledger for display.
type Status struct {
	Now         time.Time
	State       domain.ClockState
	ClockInTime *time.Time
	Elapsed     time.Duration
	TotalWorked time.Duration
	LastEvent   *domain.Event
	EventCount  int
}

type ClockService interface {
	ClockIn(ctx context.Context) (*domain.Event, error)
	ClockOut(ctx context.Context) (*domain.Session, error)
	Status(ctx context.Context) (*Status, error)
	ProjectExit(ctx context.Context, required time.Duration) (*domain.Projection, error)
	// Events returns the most recent limit events in chronological order;
	// limit <= 0 returns all.
	Events(ctx context.Context, limit int) ([]domain.Event, error)
}

// ImportResult holds the outcome of a store import.
type ImportResult struct {
	State       domain.ClockState
	EventCount  int
	TotalWorked time.Duration
}

type TransferService interface {
	HasData(ctx context.Context) (bool, error)
	Import(ctx context.Context, path string) (*ImportResult, error)
	Export(ctx context.Context, path string) (int, error)
}
