package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"socialfeed/internal/adapters/httpapi/middleware"
	followerPort "socialfeed/internal/ports/follower"
	postPort "socialfeed/internal/ports/post"
	userPort "socialfeed/internal/ports/user"
)

// Inbound ports: the interfaces the controllers need from the use cases.

type UserUseCase interface {
	RegisterUser(ctx context.Context, name, username, email, password string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, email, password string) (*userPort.LoginResponse, error)
	Users(ctx context.Context) ([]*userPort.UserDTO, error)
	SearchUser(ctx context.Context, term string) ([]*userPort.UserDTO, error)
	GetUserByID(ctx context.Context, userID string) (*userPort.UserDetailDTO, error)
}

type FeedUseCase interface {
	GetFeed(ctx context.Context) ([]*postPort.PostDTO, error)
	GetPostByID(ctx context.Context, postID string) (*postPort.PostDTO, error)
}

type PostUseCase interface {
	AddPost(ctx context.Context, authorID, content, imgURL string, tags []string) (*postPort.PostDTO, error)
	CommentPost(ctx context.Context, userID, postID, content string) (*postPort.CommentDTO, error)
	LikePost(ctx context.Context, userID, postID string) (*postPort.LikeDTO, error)
}

type FollowerUseCase interface {
	FollowUser(ctx context.Context, followerID, followingID string) (*followerPort.FollowDTO, error)
	GetFollowers(ctx context.Context, userID string) ([]*userPort.UserDTO, error)
	GetFollowing(ctx context.Context, userID string) ([]*userPort.UserDTO, error)
}

// SetupRoutes wires the controllers; the use cases are injected from main.
func SetupRoutes(
	userUC UserUseCase,
	feedUC FeedUseCase,
	postUC PostUseCase,
	followerUC FollowerUseCase,
	jwtKey []byte,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	fc := NewFeedController(feedUC)
	pc := NewPostController(postUC)
	flc := NewFollowerController(followerUC)

	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)

	auth := r.Group("/", middleware.JWTAuth(jwtKey))
	auth.GET("/posts", fc.GetFeed)
	auth.GET("/posts/:id", fc.GetPostByID)
	auth.POST("/posts", pc.AddPost)
	auth.POST("/posts/:id/comments", pc.CommentPost)
	auth.POST("/posts/:id/likes", pc.LikePost)

	auth.POST("/follow", flc.FollowUser)
	auth.GET("/followers", flc.GetFollowers)
	auth.GET("/following", flc.GetFollowing)

	auth.GET("/users", uc.Users)
	auth.GET("/users/search", uc.SearchUser)
	auth.GET("/users/:id", uc.GetUserByID)

	return r
}
