package feedapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"socialfeed/internal/core/post"
	"socialfeed/internal/core/user"
	feedPort "socialfeed/internal/ports/feed"
	postPort "socialfeed/internal/ports/post"
	userPort "socialfeed/internal/ports/user"
)

const (
	// feedCacheKey is the single well-known key holding the serialized feed
	// snapshot. The feed service is its only reader and writer.
	feedCacheKey = "posts"
	feedCacheTTL = time.Hour
)

// FeedService owns the cached feed snapshot: reads are cache-first with a
// store fallback, and every feed-affecting mutation goes through
// InvalidateFeed. The TTL acts as a backstop if an invalidation is lost.
type FeedService struct {
	PostRepository postPort.PostRepository
	Cache          feedPort.CacheStore
	Logger         *zap.Logger
}

func NewFeedService(postRepo postPort.PostRepository, cache feedPort.CacheStore, logger *zap.Logger) *FeedService {
	return &FeedService{
		PostRepository: postRepo,
		Cache:          cache,
		Logger:         logger,
	}
}

// GetFeed returns all posts, most recent first, each with joined author
// detail. A cached snapshot is returned verbatim; on a miss the feed is
// recomputed from the store and cached with the fixed TTL.
func (s *FeedService) GetFeed(ctx context.Context) ([]*postPort.PostDTO, error) {
	cached, err := s.Cache.Get(ctx, feedCacheKey)
	if err == nil {
		var dtos []*postPort.PostDTO
		if err := json.Unmarshal(cached, &dtos); err == nil {
			return dtos, nil
		}
		s.Logger.Warn("cached feed snapshot is unreadable, recomputing", zap.Error(err))
	} else if !errors.Is(err, feedPort.ErrCacheMiss) {
		// Cache unavailability is treated as a miss; the store stays the
		// source of truth.
		s.Logger.Warn("feed cache read failed, falling back to store", zap.Error(err))
	}

	posts, err := s.PostRepository.FindAllJoined(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, ToPostDTO(p))
	}

	data, err := json.Marshal(dtos)
	if err != nil {
		return nil, fmt.Errorf("failed to encode feed snapshot: %w", err)
	}
	if err := s.Cache.Set(ctx, feedCacheKey, data, feedCacheTTL); err != nil {
		s.Logger.Warn("failed to cache feed snapshot", zap.Error(err))
	}

	return dtos, nil
}

// InvalidateFeed deletes the cached snapshot so the next GetFeed recomputes
// from the store. Deleting an absent key is a no-op.
func (s *FeedService) InvalidateFeed(ctx context.Context) error {
	if err := s.Cache.Delete(ctx, feedCacheKey); err != nil {
		return fmt.Errorf("failed to invalidate feed cache: %w", err)
	}
	return nil
}

// GetPostByID bypasses the feed cache and reads one post straight from the
// store. A missing post yields (nil, nil); the caller decides how to surface
// that.
func (s *FeedService) GetPostByID(ctx context.Context, postID string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByIDJoined(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	return ToPostDTO(p), nil
}

// ToPostDTO projects an entity onto the wire shape: RFC 3339 timestamps,
// author joined in without the password field.
func ToPostDTO(p *post.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:        p.ID.String(),
		Content:   p.Content,
		ImgURL:    p.ImgURL,
		AuthorID:  p.AuthorID.String(),
		Tags:      p.Tags,
		Likes:     make([]*postPort.LikeDTO, 0, len(p.Likes)),
		Comments:  make([]*postPort.CommentDTO, 0, len(p.Comments)),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
		Author:    toUserDTO(p.Author),
	}
	if dto.Tags == nil {
		dto.Tags = []string{}
	}
	for _, l := range p.Likes {
		dto.Likes = append(dto.Likes, &postPort.LikeDTO{
			PostID:    l.PostID.String(),
			Username:  l.Username,
			CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt: l.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	for _, c := range p.Comments {
		dto.Comments = append(dto.Comments, &postPort.CommentDTO{
			Username:  c.Username,
			Content:   c.Content,
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return dto
}

func toUserDTO(u *user.User) *userPort.UserDTO {
	if u == nil {
		return nil
	}
	return &userPort.UserDTO{
		ID:       u.ID.String(),
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
	}
}
