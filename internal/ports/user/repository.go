package user

import (
	"context"

	"socialfeed/internal/core/user"
)

// UserRepository is the outbound port for storing and loading users.
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error)
	FindAll(ctx context.Context) ([]*user.User, error)
	Search(ctx context.Context, term string) ([]*user.User, error)
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// UserDTO is the author projection crossing the boundary. The password never
// appears here; every joined read projects it out.
type UserDTO struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserDetailDTO is the joined profile read: the user plus resolved follower,
// following and authored-post lists.
type UserDetailDTO struct {
	UserDTO
	Followers []*UserDTO     `json:"followers"`
	Following []*UserDTO     `json:"following"`
	Posts     []*UserPostDTO `json:"posts"`
}

// UserPostDTO is the trimmed post shape embedded in a profile; likes and
// comments are not resolved there.
type UserPostDTO struct {
	ID        string `json:"_id"`
	Content   string `json:"content"`
	ImgURL    string `json:"imgUrl,omitempty"`
	AuthorID  string `json:"authorId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
