package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/workcounter/internal/domain"
	"github.com/alexanderramin/workcounter/internal/importer"
	"github.com/alexanderramin/workcounter/internal/repository"
	"github.com/alexanderramin/workcounter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransferFixture(t *testing.T) (TransferService, *repository.LedgerStore) {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewLedgerStore(repository.NewSQLiteKVRepo(database))
	return NewTransferService(store, testutil.NewTestUoW(database)), store
}

func TestTransferService_ImportLegacyFile(t *testing.T) {
	svc, store := newTransferFixture(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "workcounter.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"check_in_out_times": {"times": [
			{"type": "in", "time": "2026-03-02T08:00:00"},
			{"type": "out", "time": "2026-03-02T12:30:00"}
		]},
		"total_worked_seconds": {"seconds": 16200}
	}`), 0o644))

	has, err := svc.HasData(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	res, err := svc.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, res.State)
	assert.Equal(t, 2, res.EventCount)
	assert.Equal(t, 4*time.Hour+30*time.Minute, res.TotalWorked)

	l, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, l.Events, 2)
	for _, e := range l.Events {
		assert.NotEmpty(t, e.ID, "imported events get ids")
	}

	has, err = svc.HasData(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestTransferService_ImportReplacesOpenSession(t *testing.T) {
	svc, store := newTransferFixture(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testutil.NewTestLedger(testutil.WithOpenSession(testutil.Base))))

	path := filepath.Join(t.TempDir(), "idle.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"total_worked_seconds": {"seconds": 60}}`), 0o644))

	_, err := svc.Import(ctx, path)
	require.NoError(t, err)

	l, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, l.State())
	assert.Empty(t, l.Events)
	assert.Equal(t, time.Minute, l.TotalWorked)
}

func TestTransferService_ImportRejectsInvalidFile(t *testing.T) {
	svc, store := newTransferFixture(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testutil.NewTestLedger(testutil.WithTotal(time.Hour))))

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"something": {}}`), 0o644))

	_, err := svc.Import(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no workcounter data")

	l, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, l.TotalWorked, "existing data untouched")
}

func TestTransferService_ExportImportRoundTrip(t *testing.T) {
	svc, store := newTransferFixture(t)
	ctx := context.Background()

	want := testutil.NewTestLedger(
		testutil.WithSession(testutil.Base, 2*time.Hour),
		testutil.WithOpenSession(testutil.Base.Add(3*time.Hour)),
	)
	require.NoError(t, store.Save(ctx, want))

	path := filepath.Join(t.TempDir(), "export.json")
	n, err := svc.Export(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	f, err := importer.LoadStoreFile(path)
	require.NoError(t, err)
	for _, key := range repository.LedgerKeys {
		assert.Contains(t, f, key)
	}

	other, otherStore := newTransferFixture(t)
	_, err = other.Import(ctx, path)
	require.NoError(t, err)

	got, err := otherStore.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.ClockInTime.Equal(*want.ClockInTime))
	assert.Equal(t, want.TotalWorked, got.TotalWorked)
	require.Len(t, got.Events, len(want.Events))
	for i := range want.Events {
		assert.Equal(t, want.Events[i].ID, got.Events[i].ID, "ids survive the round trip")
	}
}

func TestTransferService_ExportTimesheet(t *testing.T) {
	svc, store := newTransferFixture(t)
	ctx := context.Background()

	l := testutil.NewTestLedger(testutil.WithSession(testutil.Base, 2*time.Hour))
	require.NoError(t, store.Save(ctx, l))

	path := filepath.Join(t.TempDir(), "week.xlsx")
	n, err := svc.Export(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// A workbook is not a JSON store file.
	_, err = importer.LoadStoreFile(path)
	assert.Error(t, err)
}
