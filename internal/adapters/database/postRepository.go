package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"socialfeed/internal/core/post"
)

// PostRepositoryDatabase implements the post repository port on gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindAllJoined(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes", orderByCreatedAt).
		Preload("Comments", orderByCreatedAt).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindByIDJoined(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes", orderByCreatedAt).
		Preload("Comments", orderByCreatedAt).
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindByAuthor(ctx context.Context, authorID string) ([]*post.Post, error) {
	var posts []*post.Post
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) AppendComment(ctx context.Context, c *post.Comment) (*post.Comment, error) {
	if err := repo.requirePost(ctx, c.PostID.String()); err != nil {
		return nil, err
	}
	if err := repo.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *PostRepositoryDatabase) AppendLike(ctx context.Context, l *post.Like) (*post.Like, error) {
	if err := repo.requirePost(ctx, l.PostID.String()); err != nil {
		return nil, err
	}
	if err := repo.db.WithContext(ctx).Create(l).Error; err != nil {
		// The unique index on (post_id, username) closes the window two
		// concurrent likes can race through the HasLike pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, post.ErrAlreadyLiked
		}
		return nil, err
	}
	return l, nil
}

func (repo *PostRepositoryDatabase) HasLike(ctx context.Context, postID, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&post.Like{}).
		Where("post_id = ? AND username = ?", postID, username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *PostRepositoryDatabase) requirePost(ctx context.Context, id string) error {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return post.ErrNotFound
	}
	return nil
}

func orderByCreatedAt(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}
