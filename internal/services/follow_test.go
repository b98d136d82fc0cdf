package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/common"
	"inkwell/internal/models"
	"inkwell/internal/repositories/users"
	"inkwell/internal/storage"
)

func newFollowFixture(t *testing.T) (*FollowService, users.Repository) {
	t.Helper()
	ctx := context.Background()
	repo := users.NewJSONRepository(storage.NewMemBackend())
	for _, u := range []*models.User{
		{Email: "a@example.com", Username: "alice", Name: "Alice"},
		{Email: "b@example.com", Username: "bob", Name: "Bob"},
		{Email: "c@example.com", Username: "carol", Name: "Carol"},
	} {
		_, err := repo.Create(ctx, u)
		require.NoError(t, err)
	}
	return NewFollowService(repo), repo
}

func TestFollow_UpdatesBothSides(t *testing.T) {
	ctx := context.Background()
	s, repo := newFollowFixture(t)

	require.NoError(t, s.Follow(ctx, "alice", "bob"))

	alice, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	bob, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)

	assert.Equal(t, []string{bob.ID}, alice.Following)
	assert.Equal(t, []string{alice.ID}, bob.Followers)
	assert.Empty(t, alice.Followers)
	assert.Empty(t, bob.Following)
}

func TestFollow_Idempotent(t *testing.T) {
	ctx := context.Background()
	s, repo := newFollowFixture(t)

	require.NoError(t, s.Follow(ctx, "alice", "bob"))
	require.NoError(t, s.Follow(ctx, "alice", "bob"))

	alice, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	bob, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, alice.Following, 1)
	assert.Len(t, bob.Followers, 1)
}

func TestUnfollow_RemovesOnlyTheLink(t *testing.T) {
	ctx := context.Background()
	s, repo := newFollowFixture(t)

	require.NoError(t, s.Follow(ctx, "alice", "bob"))
	require.NoError(t, s.Follow(ctx, "alice", "carol"))
	require.NoError(t, s.Unfollow(ctx, "alice", "bob"))

	alice, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	carol, err := repo.FindByUsername(ctx, "carol")
	require.NoError(t, err)
	bob, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)

	assert.Equal(t, []string{carol.ID}, alice.Following)
	assert.Empty(t, bob.Followers)
	assert.Equal(t, []string{alice.ID}, carol.Followers)
}

func TestUnfollow_NeverFollowedIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, repo := newFollowFixture(t)

	require.NoError(t, s.Unfollow(ctx, "alice", "bob"))

	alice, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, alice.Following)
}

func TestFollow_SelfIsRejected(t *testing.T) {
	ctx := context.Background()
	s, _ := newFollowFixture(t)

	assert.ErrorIs(t, s.Follow(ctx, "alice", "alice"), common.ErrorValidation)
	assert.ErrorIs(t, s.Unfollow(ctx, "alice", "alice"), common.ErrorValidation)
}

func TestFollow_UnknownUser(t *testing.T) {
	ctx := context.Background()
	s, repo := newFollowFixture(t)

	assert.ErrorIs(t, s.Follow(ctx, "alice", "nobody"), common.ErrorNotFound)
	assert.ErrorIs(t, s.Follow(ctx, "nobody", "alice"), common.ErrorNotFound)

	alice, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, alice.Following, "failed follow must leave no partial link")
}
