package postapp_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbadapter "socialfeed/internal/adapters/database"
	"socialfeed/internal/core/post"
	postapp "socialfeed/internal/core/post/service"
	"socialfeed/internal/core/user"
)

// spyInvalidator records invalidation calls so tests can assert which
// mutations drop the feed snapshot.
type spyInvalidator struct {
	calls int
}

func (s *spyInvalidator) InvalidateFeed(ctx context.Context) error {
	s.calls++
	return nil
}

func setupTest(t *testing.T) (*postapp.PostService, *spyInvalidator, *user.User) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &post.Post{}, &post.Like{}, &post.Comment{}))

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	spy := &spyInvalidator{}
	svc := postapp.NewPostService(postRepo, userRepo, spy, zap.NewNop())

	author, err := userRepo.Create(context.Background(), &user.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed",
	})
	require.NoError(t, err)

	return svc, spy, author
}

func TestAddPostRejectsEmptyContent(t *testing.T) {
	svc, spy, author := setupTest(t)

	_, err := svc.AddPost(context.Background(), author.ID.String(), "   ", "", nil)
	assert.ErrorIs(t, err, post.ErrEmptyContent)
	assert.Zero(t, spy.calls, "validation failure must not invalidate")
}

func TestAddPostDefaultsTagsAndInvalidates(t *testing.T) {
	svc, spy, author := setupTest(t)

	dto, err := svc.AddPost(context.Background(), author.ID.String(), "hello", "http://img", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, dto.Tags)
	assert.Equal(t, "http://img", dto.ImgURL)
	assert.Equal(t, author.ID.String(), dto.AuthorID)
	assert.NotEmpty(t, dto.CreatedAt)
	assert.Equal(t, 1, spy.calls)
}

func TestCommentPostRequiresExistingPost(t *testing.T) {
	svc, spy, author := setupTest(t)

	_, err := svc.CommentPost(context.Background(), author.ID.String(), uuid.Must(uuid.NewV4()).String(), "hi")
	assert.ErrorIs(t, err, post.ErrNotFound)
	assert.Zero(t, spy.calls)
}

func TestCommentPostUsesPrincipalUsername(t *testing.T) {
	svc, spy, author := setupTest(t)
	ctx := context.Background()

	p, err := svc.AddPost(ctx, author.ID.String(), "hello", "", nil)
	require.NoError(t, err)

	c, err := svc.CommentPost(ctx, author.ID.String(), p.ID, "nice one")
	require.NoError(t, err)
	assert.Equal(t, "alice", c.Username)
	assert.Equal(t, "nice one", c.Content)
	assert.Equal(t, 2, spy.calls)
}

func TestLikePostTwiceIsRejected(t *testing.T) {
	svc, spy, author := setupTest(t)
	ctx := context.Background()

	p, err := svc.AddPost(ctx, author.ID.String(), "hello", "", nil)
	require.NoError(t, err)

	l, err := svc.LikePost(ctx, author.ID.String(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", l.Username)
	assert.Equal(t, 2, spy.calls)

	_, err = svc.LikePost(ctx, author.ID.String(), p.ID)
	assert.ErrorIs(t, err, post.ErrAlreadyLiked)
	assert.Equal(t, 2, spy.calls, "rejected like must not invalidate")
}

func TestLikePostRequiresExistingPost(t *testing.T) {
	svc, _, author := setupTest(t)

	_, err := svc.LikePost(context.Background(), author.ID.String(), uuid.Must(uuid.NewV4()).String())
	assert.ErrorIs(t, err, post.ErrNotFound)
}

func TestMutationsRequireKnownPrincipal(t *testing.T) {
	svc, _, _ := setupTest(t)

	_, err := svc.LikePost(context.Background(), uuid.Must(uuid.NewV4()).String(), uuid.Must(uuid.NewV4()).String())
	assert.ErrorIs(t, err, user.ErrNotFound)
}
