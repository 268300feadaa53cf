package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/workcounter/internal/domain"
)

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = errors.New("not found")

// KVRepo is the persisted key-value store. Values are opaque JSON documents.
type KVRepo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// LedgerRepo loads and saves the whole clock ledger.
type LedgerRepo interface {
	Load(ctx context.Context) (*domain.Ledger, error)
	Save(ctx context.Context, l *domain.Ledger) error
}
