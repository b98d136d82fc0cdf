package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	file, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	return map[string]Backend{
		"file":   file,
		"memory": NewMemBackend(),
	}
}

func TestBackend_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := b.Get(ctx, "users")
			require.NoError(t, err)
			assert.False(t, ok, "missing name must report absent")

			require.NoError(t, b.Set(ctx, "users", []byte(`[{"id":"1"}]`)))

			data, ok, err := b.Get(ctx, "users")
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, `[{"id":"1"}]`, string(data))
		})
	}
}

func TestBackend_SetReplacesWholeSnapshot(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.Set(ctx, "articles", []byte(`["a","b"]`)))
			require.NoError(t, b.Set(ctx, "articles", []byte(`["c"]`)))

			data, ok, err := b.Get(ctx, "articles")
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, `["c"]`, string(data))
		})
	}
}

func TestBackend_Delete(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.Set(ctx, "current_user", []byte(`{}`)))
			require.NoError(t, b.Delete(ctx, "current_user"))

			_, ok, err := b.Get(ctx, "current_user")
			require.NoError(t, err)
			assert.False(t, ok)

			// deleting a missing name is a no-op
			require.NoError(t, b.Delete(ctx, "current_user"))
		})
	}
}

func TestBackend_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, b.Set(ctx, "users", []byte(`[]`)))
			_, _, err := b.Get(ctx, "users")
			assert.Error(t, err)
		})
	}
}
