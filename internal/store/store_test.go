package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/storage"
)

func TestInit_SeedsSampleData(t *testing.T) {
	ctx := context.Background()
	s := New(storage.NewMemBackend())
	require.NoError(t, s.Init(ctx))

	john, err := s.Users().FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "johndoe", john.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(john.CredentialSecret), []byte("password123")))

	jane, err := s.Users().FindByUsername(ctx, "janesmith")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", jane.Email)

	published, err := s.Articles().Published(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Getting Started with React Hooks", published[0].Title)
	require.NotNil(t, published[0].PublishedAt)

	all, err := s.Articles().ByAuthor(ctx, john.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2, "the seeded draft belongs to john as well")
}

func TestInit_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemBackend()

	s := New(backend)
	require.NoError(t, s.Init(ctx))
	first, err := s.Articles().Published(ctx)
	require.NoError(t, err)

	// a second init over the same backend must not duplicate seed records
	again := New(backend)
	require.NoError(t, again.Init(ctx))
	second, err := again.Articles().Published(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second))

	_, err = again.Users().FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
}

func TestInit_LeavesExistingDataAlone(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemBackend()
	s := New(backend)
	require.NoError(t, s.Init(ctx))

	removed, err := s.Articles().Delete(ctx, "2")
	require.NoError(t, err)
	require.True(t, removed)

	// re-init must not resurrect the deleted draft: the collection is not empty
	require.NoError(t, s.Init(ctx))
	john, err := s.Users().FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	all, err := s.Articles().ByAuthor(ctx, john.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
