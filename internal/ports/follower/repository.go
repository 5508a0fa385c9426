package follower

import (
	"context"

	"socialfeed/internal/core/follower"
	"socialfeed/internal/core/user"
)

// FollowerRepository is the outbound port for follow relationships.
type FollowerRepository interface {
	// Create fails with follower.ErrAlreadyFollowing when the ordered
	// (followingID, followerID) pair already exists.
	Create(ctx context.Context, follow *follower.Follower) (*follower.Follower, error)
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	// GetFollowers returns the users following userID; GetFollowing the
	// users userID follows. Both are typed joins onto the users table.
	GetFollowers(ctx context.Context, userID string) ([]*user.User, error)
	GetFollowing(ctx context.Context, userID string) ([]*user.User, error)
}

type FollowDTO struct {
	FollowingID string `json:"followingId"`
	FollowerID  string `json:"followerId"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
