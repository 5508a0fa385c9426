package post

import (
	"context"

	"socialfeed/internal/core/post"
	userPort "socialfeed/internal/ports/user"
)

// PostRepository is the outbound port for the post collection. The joined
// reads resolve the author relation and the embedded like/comment sequences;
// a missing author row yields a nil Author, not an error.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	// FindAllJoined returns every post with author, likes and comments
	// resolved, ordered by creation time descending.
	FindAllJoined(ctx context.Context) ([]*post.Post, error)
	// FindByIDJoined returns nil (no error) when the post does not exist.
	FindByIDJoined(ctx context.Context, id string) (*post.Post, error)
	FindByAuthor(ctx context.Context, authorID string) ([]*post.Post, error)
	// AppendComment fails with post.ErrNotFound when the target is absent.
	AppendComment(ctx context.Context, comment *post.Comment) (*post.Comment, error)
	// AppendLike fails with post.ErrNotFound when the target is absent and
	// with post.ErrAlreadyLiked when the (post, username) pair exists.
	AppendLike(ctx context.Context, like *post.Like) (*post.Like, error)
	HasLike(ctx context.Context, postID, username string) (bool, error)
}

// PostDTO mirrors the wire shape of a post: timestamps as RFC 3339 text,
// author joined in as userDetail without the password.
type PostDTO struct {
	ID        string            `json:"_id"`
	Content   string            `json:"content"`
	ImgURL    string            `json:"imgUrl,omitempty"`
	AuthorID  string            `json:"authorId"`
	Tags      []string          `json:"tags"`
	Likes     []*LikeDTO        `json:"likes"`
	Comments  []*CommentDTO     `json:"comments"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
	Author    *userPort.UserDTO `json:"userDetail"`
}

type LikeDTO struct {
	PostID    string `json:"postId"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type CommentDTO struct {
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
