package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/workcounter/internal/domain"
	"github.com/alexanderramin/workcounter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerStore_EmptyStoreIsIdle(t *testing.T) {
	store := NewLedgerStore(NewMemoryKVRepo())

	l, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, l.State())
	assert.Empty(t, l.Events)
	assert.Zero(t, l.TotalWorked)
}

func TestLedgerStore_SaveLoad(t *testing.T) {
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := NewLedgerStore(kv)

			want := testutil.NewTestLedger(
				testutil.WithSession(testutil.Base, 3*time.Hour+30*time.Second),
				testutil.WithOpenSession(testutil.Base.Add(4*time.Hour)),
			)
			require.NoError(t, store.Save(ctx, want))

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.StateClockedIn, got.State())
			assert.True(t, got.ClockInTime.Equal(*want.ClockInTime))
			assert.Equal(t, want.TotalWorked, got.TotalWorked)
			require.Len(t, got.Events, 3)
			for i := range want.Events {
				assert.Equal(t, want.Events[i].ID, got.Events[i].ID)
				assert.Equal(t, want.Events[i].Type, got.Events[i].Type)
				assert.True(t, want.Events[i].Time.Equal(got.Events[i].Time), "event %d time", i)
			}
		})
	}
}

func TestLedgerStore_IdleSaveDeletesClockIn(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKVRepo()
	store := NewLedgerStore(kv)

	open := testutil.NewTestLedger(testutil.WithOpenSession(testutil.Base))
	require.NoError(t, store.Save(ctx, open))

	_, err := open.ClockOut(testutil.Base.Add(time.Hour), "out-1")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, open))

	_, err = kv.Get(ctx, KeyClockInTime)
	assert.ErrorIs(t, err, ErrNotFound)

	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyCheckInOutTimes, KeyTotalWorkedSeconds}, keys)
}

func TestLedgerStore_RestoresClockInOnly(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKVRepo()
	require.NoError(t, kv.Put(ctx, KeyClockInTime, []byte(`{"time": "2026-03-02T08:15:00+01:00"}`)))

	l, err := NewLedgerStore(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StateClockedIn, l.State())

	want := time.Date(2026, 3, 2, 7, 15, 0, 0, time.UTC)
	assert.True(t, l.ClockInTime.Equal(want))
}

func TestLedgerStore_ReadsOffsetlessTimestamps(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKVRepo()
	require.NoError(t, kv.Put(ctx, KeyCheckInOutTimes, []byte(`{"times": [
		{"type": "in", "time": "2026-03-02T09:00:00.123456"},
		{"type": "out", "time": "2026-03-02T17:30:00"}
	]}`)))
	require.NoError(t, kv.Put(ctx, KeyTotalWorkedSeconds, []byte(`{"seconds": 30599.876544}`)))

	l, err := NewLedgerStore(kv).Load(ctx)
	require.NoError(t, err)
	require.Len(t, l.Events, 2)
	assert.Empty(t, l.Events[0].ID)
	assert.True(t, l.Events[0].Time.Equal(time.Date(2026, 3, 2, 9, 0, 0, 123456000, time.Local)))
	assert.True(t, l.Events[1].Time.Equal(time.Date(2026, 3, 2, 17, 30, 0, 0, time.Local)))
	assert.Equal(t, 30599876544*time.Microsecond, l.TotalWorked)
}

func TestLedgerStore_RejectsBadData(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad timestamp", KeyClockInTime, `{"time": "yesterday"}`},
		{"bad event type", KeyCheckInOutTimes, `{"times": [{"type": "lunch", "time": "2026-03-02T09:00:00"}]}`},
		{"negative total", KeyTotalWorkedSeconds, `{"seconds": -1}`},
		{"not json", KeyTotalWorkedSeconds, `seconds=1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewMemoryKVRepo()
			require.NoError(t, kv.Put(ctx, tt.key, []byte(tt.value)))

			_, err := NewLedgerStore(kv).Load(ctx)
			assert.Error(t, err)
		})
	}
}
