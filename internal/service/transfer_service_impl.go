package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/workcounter/internal/db"
	"github.com/alexanderramin/workcounter/internal/importer"
	"github.com/alexanderramin/workcounter/internal/repository"
	"github.com/alexanderramin/workcounter/internal/timesheet"
	"github.com/google/uuid"
)

type transferService struct {
	ledger   repository.LedgerRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewTransferService wires import and export of the JSON store file.
func NewTransferService(ledger repository.LedgerRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TransferService {
	return &transferService{
		ledger:   ledger,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *transferService) HasData(ctx context.Context) (bool, error) {
	l, err := s.ledger.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("loading ledger: %w", err)
	}
	return l.ClockInTime != nil || len(l.Events) > 0 || l.TotalWorked > 0, nil
}

// Import replaces the stored ledger with the contents of a JSON store file.
// Events without an id are given one.
func (s *transferService) Import(ctx context.Context, path string) (result *ImportResult, err error) {
	fields := map[string]any{"path": path}
	done := useCase(ctx, s.observer, "import", fields)
	defer func() { done(err) }()

	f, err := importer.LoadStoreFile(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateStoreFile(f); len(errs) > 0 {
		return nil, fmt.Errorf("invalid store file: %w", errors.Join(errs...))
	}

	kv, err := f.KV(ctx)
	if err != nil {
		return nil, err
	}
	l, err := repository.NewLedgerStore(kv).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}
	for i := range l.Events {
		if l.Events[i].ID == "" {
			l.Events[i].ID = uuid.New().String()
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return txLedger(tx).Save(ctx, l)
	})
	if err != nil {
		return nil, fmt.Errorf("saving ledger: %w", err)
	}

	fields["event_count"] = len(l.Events)
	return &ImportResult{
		State:       l.State(),
		EventCount:  len(l.Events),
		TotalWorked: l.TotalWorked,
	}, nil
}

// Export writes the stored ledger to path and returns the number of events
// written. A .xlsx path produces a timesheet workbook, anything else the JSON
// store layout.
func (s *transferService) Export(ctx context.Context, path string) (n int, err error) {
	fields := map[string]any{"path": path}
	done := useCase(ctx, s.observer, "export", fields)
	defer func() { done(err) }()

	l, err := s.ledger.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading ledger: %w", err)
	}

	if timesheet.IsPath(path) {
		fields["format"] = "xlsx"
		if err := timesheet.Write(path, l); err != nil {
			return 0, err
		}
		fields["event_count"] = len(l.Events)
		return len(l.Events), nil
	}

	kv := repository.NewMemoryKVRepo()
	if err := repository.NewLedgerStore(kv).Save(ctx, l); err != nil {
		return 0, err
	}
	f, err := importer.StoreFileFromKV(ctx, kv)
	if err != nil {
		return 0, err
	}
	if err := f.Write(path); err != nil {
		return 0, err
	}

	fields["event_count"] = len(l.Events)
	return len(l.Events), nil
}
