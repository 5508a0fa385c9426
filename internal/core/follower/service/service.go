package followerapp

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	followerEntity "socialfeed/internal/core/follower"
	"socialfeed/internal/core/user"
	followerPort "socialfeed/internal/ports/follower"
	userPort "socialfeed/internal/ports/user"
)

// FollowerService manages follow relationships. Following does not change
// post content, so nothing here touches the feed cache.
type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
}

func NewFollowerService(repo followerPort.FollowerRepository) *FollowerService {
	return &FollowerService{FollowerRepository: repo}
}

// FollowUser records that followerID follows followingID. A duplicate pair
// is rejected with ErrAlreadyFollowing, sequentially by the pre-check and
// concurrently by the store's unique index.
func (s *FollowerService) FollowUser(ctx context.Context, followerID, followingID string) (*followerPort.FollowDTO, error) {
	if followerID == followingID {
		return nil, followerEntity.ErrSelfFollow
	}
	fid, err := uuid.FromString(followingID)
	if err != nil {
		return nil, fmt.Errorf("invalid following id: %w", err)
	}
	frid, err := uuid.FromString(followerID)
	if err != nil {
		return nil, fmt.Errorf("invalid follower id: %w", err)
	}

	already, err := s.FollowerRepository.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, followerEntity.ErrAlreadyFollowing
	}

	f := &followerEntity.Follower{
		ID:          uuid.Must(uuid.NewV4()),
		FollowingID: fid,
		FollowerID:  frid,
	}
	created, err := s.FollowerRepository.Create(ctx, f)
	if err != nil {
		return nil, err
	}

	return &followerPort.FollowDTO{
		FollowingID: created.FollowingID.String(),
		FollowerID:  created.FollowerID.String(),
		CreatedAt:   created.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   created.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *FollowerService) GetFollowers(ctx context.Context, userID string) ([]*userPort.UserDTO, error) {
	users, err := s.FollowerRepository.GetFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserDTOs(users), nil
}

func (s *FollowerService) GetFollowing(ctx context.Context, userID string) ([]*userPort.UserDTO, error) {
	users, err := s.FollowerRepository.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserDTOs(users), nil
}

func toUserDTOs(users []*user.User) []*userPort.UserDTO {
	dtos := make([]*userPort.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, &userPort.UserDTO{
			ID:       u.ID.String(),
			Name:     u.Name,
			Username: u.Username,
			Email:    u.Email,
		})
	}
	return dtos
}
