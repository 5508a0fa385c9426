package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"socialfeed/internal/core/follower"
	"socialfeed/internal/core/user"
)

// FollowerRepositoryDatabase implements the follower repository port on gorm.
type FollowerRepositoryDatabase struct {
	db *gorm.DB
}

func NewFollowerRepositoryDatabase(db *gorm.DB) *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{db: db}
}

func (repo *FollowerRepositoryDatabase) Create(ctx context.Context, f *follower.Follower) (*follower.Follower, error) {
	if err := repo.db.WithContext(ctx).Create(f).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, follower.ErrAlreadyFollowing
		}
		return nil, err
	}
	return f, nil
}

func (repo *FollowerRepositoryDatabase) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&follower.Follower{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FollowerRepositoryDatabase) GetFollowers(ctx context.Context, userID string) ([]*user.User, error) {
	var users []*user.User
	err := repo.db.WithContext(ctx).
		Model(&user.User{}).
		Joins("JOIN followers ON followers.follower_id = users.id").
		Where("followers.following_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *FollowerRepositoryDatabase) GetFollowing(ctx context.Context, userID string) ([]*user.User, error) {
	var users []*user.User
	err := repo.db.WithContext(ctx).
		Model(&user.User{}).
		Joins("JOIN followers ON followers.following_id = users.id").
		Where("followers.follower_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
