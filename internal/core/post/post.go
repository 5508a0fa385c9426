package post

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"

	"socialfeed/internal/core/user"
)

var (
	ErrNotFound     = errors.New("post not found")
	ErrEmptyContent = errors.New("content must be provided")
	ErrAlreadyLiked = errors.New("you have already liked this post")
)

type Post struct {
	ID       uuid.UUID  `gorm:"primary_key;type:char(36)"`
	Content  string     `gorm:"type:text;not null"`
	ImgURL   string     `gorm:"type:text"`
	AuthorID uuid.UUID  `gorm:"type:char(36);not null;index"`
	Author   *user.User `gorm:"foreignkey:AuthorID"`
	Tags     []string   `gorm:"serializer:json;type:text"`
	Likes    []Like     `gorm:"foreignkey:PostID"`
	Comments []Comment  `gorm:"foreignkey:PostID"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Like rows carry a composite unique index so a (post, username) pair can only
// be inserted once, even when two requests race past the application-level
// pre-check.
type Like struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_likes_post_username"`
	Username  string    `gorm:"size:191;not null;uniqueIndex:idx_likes_post_username"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type Comment struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Username  string    `gorm:"size:191;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
