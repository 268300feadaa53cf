package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/workcounter/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func putEntry(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, 'now')`, key, value)
	return err
}

// readEntry reads a value through a separate read-only transaction.
func readEntry(t *testing.T, uow *db.SQLiteUnitOfWork, key string) (string, bool) {
	t.Helper()
	var val string
	var found bool
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := tx.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&val); err != nil {
			return nil
		}
		found = true
		return nil
	}))
	return val, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return putEntry(ctx, tx, "k1", "v1")
	})
	require.NoError(t, err)

	val, found := readEntry(t, uow, "k1")
	assert.True(t, found)
	assert.Equal(t, "v1", val)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putEntry(ctx, tx, "k2", "v2"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, found := readEntry(t, uow, "k2")
	assert.False(t, found, "write must be rolled back")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putEntry(ctx, tx, "k3", "v3")
			panic("boom")
		})
	})

	_, found := readEntry(t, uow, "k3")
	assert.False(t, found)
}
