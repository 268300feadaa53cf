package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workcounter/internal/db"
	"github.com/alexanderramin/workcounter/internal/domain"
	"github.com/alexanderramin/workcounter/internal/repository"
	"github.com/google/uuid"
)

type clockService struct {
	ledger   repository.LedgerRepo
	uow      db.UnitOfWork
	clock    domain.Clock
	observer UseCaseObserver
}

// NewClockService wires the clock use cases. Reads go through ledger; writes
// run in uow against a tx-scoped LedgerStore.
func NewClockService(
	ledger repository.LedgerRepo,
	uow db.UnitOfWork,
	clock domain.Clock,
	observers ...UseCaseObserver,
) ClockService {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &clockService{
		ledger:   ledger,
		uow:      uow,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func txLedger(tx db.DBTX) *repository.LedgerStore {
	return repository.NewLedgerStore(repository.NewSQLiteKVRepo(tx))
}

func (s *clockService) ClockIn(ctx context.Context) (event *domain.Event, err error) {
	fields := map[string]any{}
	done := useCase(ctx, s.observer, "clock-in", fields)
	defer func() { done(err) }()

	now := s.clock.Now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		store := txLedger(tx)
		l, err := store.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading ledger: %w", err)
		}
		if err := l.ClockIn(now, uuid.New().String()); err != nil {
			return err
		}
		if err := store.Save(ctx, l); err != nil {
			return fmt.Errorf("saving ledger: %w", err)
		}
		e := *l.LastEvent()
		event = &e
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["event_id"] = event.ID
	return event, nil
}

func (s *clockService) ClockOut(ctx context.Context) (session *domain.Session, err error) {
	fields := map[string]any{}
	done := useCase(ctx, s.observer, "clock-out", fields)
	defer func() { done(err) }()

	now := s.clock.Now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		store := txLedger(tx)
		l, err := store.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading ledger: %w", err)
		}
		session, err = l.ClockOut(now, uuid.New().String())
		if err != nil {
			return err
		}
		if err := store.Save(ctx, l); err != nil {
			return fmt.Errorf("saving ledger: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["session_s"] = int64(session.Duration / time.Second)
	fields["total_s"] = int64(session.TotalWorked / time.Second)
	return session, nil
}

func (s *clockService) Status(ctx context.Context) (*Status, error) {
	l, err := s.ledger.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	now := s.clock.Now()
	return &Status{
		Now:         now,
		State:       l.State(),
		ClockInTime: l.ClockInTime,
		Elapsed:     l.ElapsedSinceClockIn(now),
		TotalWorked: l.TotalWorked,
		LastEvent:   l.LastEvent(),
		EventCount:  len(l.Events),
	}, nil
}

func (s *clockService) ProjectExit(ctx context.Context, required time.Duration) (*domain.Projection, error) {
	if required <= 0 {
		required = domain.DefaultRequired
	}
	l, err := s.ledger.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	return l.ProjectedExit(required)
}

func (s *clockService) Events(ctx context.Context, limit int) ([]domain.Event, error) {
	l, err := s.ledger.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	events := l.Events
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	return events, nil
}
