package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/workcounter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kvBackends returns every KVRepo implementation so behaviour is checked on each.
func kvBackends(t *testing.T) map[string]KVRepo {
	t.Helper()
	return map[string]KVRepo{
		"sqlite": NewSQLiteKVRepo(testutil.NewTestDB(t)),
		"memory": NewMemoryKVRepo(),
	}
}

func TestKVRepo_PutGet(t *testing.T) {
	for name, repo := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, repo.Put(ctx, "a", []byte(`{"x":1}`)))
			got, err := repo.Get(ctx, "a")
			require.NoError(t, err)
			assert.JSONEq(t, `{"x":1}`, string(got))

			// Overwrite replaces the value.
			require.NoError(t, repo.Put(ctx, "a", []byte(`{"x":2}`)))
			got, err = repo.Get(ctx, "a")
			require.NoError(t, err)
			assert.JSONEq(t, `{"x":2}`, string(got))
		})
	}
}

func TestKVRepo_GetMissing(t *testing.T) {
	for name, repo := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Get(context.Background(), "nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestKVRepo_DeleteAndKeys(t *testing.T) {
	for name, repo := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.Put(ctx, "b", []byte(`1`)))
			require.NoError(t, repo.Put(ctx, "a", []byte(`2`)))

			keys, err := repo.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, keys)

			require.NoError(t, repo.Delete(ctx, "a"))
			require.NoError(t, repo.Delete(ctx, "never-existed"))

			keys, err = repo.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"b"}, keys)
		})
	}
}
