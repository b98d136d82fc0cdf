package services

import (
	"context"
	"fmt"

	"inkwell/internal/common"
	"inkwell/internal/models"
	"inkwell/internal/repositories/users"
)

// FollowService maintains the follow graph: a user's following set and the
// mirrored followers set on the other side. Both sides are updated through
// the store's partial-update operation; following yourself is rejected.
type FollowService struct {
	users users.Repository
}

func NewFollowService(repo users.Repository) *FollowService {
	return &FollowService{users: repo}
}

// Follow makes follower follow followee (both by username). Following an
// already-followed user is a no-op.
func (s *FollowService) Follow(ctx context.Context, followerUsername, followeeUsername string) error {
	return s.link(ctx, followerUsername, followeeUsername, true)
}

// Unfollow removes the link in both directions. Unfollowing a user who was
// never followed is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerUsername, followeeUsername string) error {
	return s.link(ctx, followerUsername, followeeUsername, false)
}

func (s *FollowService) link(ctx context.Context, followerUsername, followeeUsername string, follow bool) error {
	if followerUsername == followeeUsername {
		return common.ErrorValidation
	}
	follower, err := s.users.FindByUsername(ctx, followerUsername)
	if err != nil {
		return fmt.Errorf("find follower: %w", err)
	}
	followee, err := s.users.FindByUsername(ctx, followeeUsername)
	if err != nil {
		return fmt.Errorf("find followee: %w", err)
	}

	following := applyLink(follower.Following, followee.ID, follow)
	followers := applyLink(followee.Followers, follower.ID, follow)

	if _, err := s.users.Update(ctx, follower.ID, models.UserPatch{Following: &following}); err != nil {
		return fmt.Errorf("update follower: %w", err)
	}
	if _, err := s.users.Update(ctx, followee.ID, models.UserPatch{Followers: &followers}); err != nil {
		return fmt.Errorf("update followee: %w", err)
	}
	return nil
}

// applyLink adds or removes id from the set, preserving order and never
// duplicating.
func applyLink(set []string, id string, add bool) []string {
	result := make([]string, 0, len(set)+1)
	present := false
	for _, member := range set {
		if member == id {
			present = true
			if !add {
				continue
			}
		}
		result = append(result, member)
	}
	if add && !present {
		result = append(result, id)
	}
	return result
}
