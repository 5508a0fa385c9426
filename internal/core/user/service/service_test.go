package userapp_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbadapter "socialfeed/internal/adapters/database"
	"socialfeed/internal/core/follower"
	followerapp "socialfeed/internal/core/follower/service"
	"socialfeed/internal/core/post"
	"socialfeed/internal/core/user"
	userapp "socialfeed/internal/core/user/service"
)

func setupTest(t *testing.T) (*userapp.UserService, *followerapp.FollowerService) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&post.Post{},
		&post.Like{},
		&post.Comment{},
		&follower.Follower{},
	))

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	followerRepo := dbadapter.NewFollowerRepositoryDatabase(db)

	svc := userapp.NewUserService(userRepo, postRepo, followerRepo, zap.NewNop(), []byte("test-secret"))
	return svc, followerapp.NewFollowerService(followerRepo)
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	u, err := svc.RegisterUser(ctx, "Alice", "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	res, err := svc.LoginUser(ctx, "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, u.ID, res.UserID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "Alice", "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.LoginUser(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.LoginUser(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "Alice", "alice", "not-an-email", "hunter2")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)

	_, err = svc.RegisterUser(ctx, "Alice", "alice", "alice@example.com", "abc")
	assert.ErrorIs(t, err, user.ErrPasswordTooShort)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "Alice", "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, "Other", "other", "alice@example.com", "hunter2")
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	_, err = svc.RegisterUser(ctx, "Other", "alice", "other@example.com", "hunter2")
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestSearchUser(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "Alice Wonder", "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)
	_, err = svc.RegisterUser(ctx, "Bob Builder", "bob", "bob@example.com", "hunter2")
	require.NoError(t, err)

	found, err := svc.SearchUser(ctx, "ALI")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "alice", found[0].Username)

	found, err = svc.SearchUser(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestGetUserByIDJoinsProfile(t *testing.T) {
	svc, followerSvc := setupTest(t)
	ctx := context.Background()

	alice, err := svc.RegisterUser(ctx, "Alice", "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)
	bob, err := svc.RegisterUser(ctx, "Bob", "bob", "bob@example.com", "hunter2")
	require.NoError(t, err)

	_, err = followerSvc.FollowUser(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	detail, err := svc.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", detail.Username)
	require.Len(t, detail.Followers, 1)
	assert.Equal(t, "bob", detail.Followers[0].Username)
	assert.Empty(t, detail.Following)
	assert.Empty(t, detail.Posts)
}

func TestGetUserByIDMissing(t *testing.T) {
	svc, _ := setupTest(t)

	_, err := svc.GetUserByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, user.ErrNotFound)
}
