package postapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	postEntity "socialfeed/internal/core/post"
	feedPort "socialfeed/internal/ports/feed"
	postPort "socialfeed/internal/ports/post"
	userPort "socialfeed/internal/ports/user"
)

// PostService handles the write side of the feed: every mutation that
// changes feed-visible content persists through the post repository and then
// drops the cached snapshot through the feed invalidator.
type PostService struct {
	PostRepository postPort.PostRepository
	UserRepository userPort.UserRepository
	Feed           feedPort.Invalidator
	Logger         *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	feed feedPort.Invalidator,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository: postRepo,
		UserRepository: userRepo,
		Feed:           feed,
		Logger:         logger,
	}
}

// AddPost creates a post for the authenticated author. Tags default to an
// empty list; timestamps are server-assigned.
func (s *PostService) AddPost(ctx context.Context, authorID, content, imgURL string, tags []string) (*postPort.PostDTO, error) {
	if strings.TrimSpace(content) == "" {
		return nil, postEntity.ErrEmptyContent
	}
	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Content:  content,
		ImgURL:   imgURL,
		AuthorID: aid,
		Tags:     tags,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	if err := s.Feed.InvalidateFeed(ctx); err != nil {
		return nil, err
	}

	s.Logger.Info("post created",
		zap.String("postID", created.ID.String()),
		zap.String("authorID", authorID))

	return toPostDTO(created), nil
}

// CommentPost appends a comment to an existing post under the principal's
// username.
func (s *PostService) CommentPost(ctx context.Context, userID, postID, content string) (*postPort.CommentDTO, error) {
	if strings.TrimSpace(content) == "" {
		return nil, postEntity.ErrEmptyContent
	}
	username, err := s.principalUsername(ctx, userID)
	if err != nil {
		return nil, err
	}
	pid, err := uuid.FromString(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post id: %w", err)
	}

	c := &postEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		PostID:   pid,
		Username: username,
		Content:  content,
	}
	created, err := s.PostRepository.AppendComment(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := s.Feed.InvalidateFeed(ctx); err != nil {
		return nil, err
	}

	return &postPort.CommentDTO{
		Username:  created.Username,
		Content:   created.Content,
		CreatedAt: created.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: created.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// LikePost records a like for the principal. A second like of the same post
// by the same user is rejected with ErrAlreadyLiked: the pre-check catches
// the sequential case, the unique index the concurrent one.
func (s *PostService) LikePost(ctx context.Context, userID, postID string) (*postPort.LikeDTO, error) {
	username, err := s.principalUsername(ctx, userID)
	if err != nil {
		return nil, err
	}
	pid, err := uuid.FromString(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post id: %w", err)
	}

	liked, err := s.PostRepository.HasLike(ctx, postID, username)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, postEntity.ErrAlreadyLiked
	}

	l := &postEntity.Like{
		ID:       uuid.Must(uuid.NewV4()),
		PostID:   pid,
		Username: username,
	}
	created, err := s.PostRepository.AppendLike(ctx, l)
	if err != nil {
		return nil, err
	}
	if err := s.Feed.InvalidateFeed(ctx); err != nil {
		return nil, err
	}

	return &postPort.LikeDTO{
		PostID:    created.PostID.String(),
		Username:  created.Username,
		CreatedAt: created.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: created.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *PostService) principalUsername(ctx context.Context, userID string) (string, error) {
	u, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

func toPostDTO(p *postEntity.Post) *postPort.PostDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return &postPort.PostDTO{
		ID:        p.ID.String(),
		Content:   p.Content,
		ImgURL:    p.ImgURL,
		AuthorID:  p.AuthorID.String(),
		Tags:      tags,
		Likes:     []*postPort.LikeDTO{},
		Comments:  []*postPort.CommentDTO{},
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
