package main

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dbadapter "socialfeed/internal/adapters/database"
	"socialfeed/internal/adapters/httpapi"
	redisadapter "socialfeed/internal/adapters/redis"
	"socialfeed/internal/config"
	feedapp "socialfeed/internal/core/feed/service"
	"socialfeed/internal/core/follower"
	followerapp "socialfeed/internal/core/follower/service"
	"socialfeed/internal/core/post"
	postapp "socialfeed/internal/core/post/service"
	"socialfeed/internal/core/user"
	userapp "socialfeed/internal/core/user/service"
)

func main() {
	logger, err := config.NewLogger()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := config.NewDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&user.User{},
		&post.Post{},
		&post.Like{},
		&post.Comment{},
		&follower.Follower{},
	); err != nil {
		logger.Fatal("error during migrations", zap.Error(err))
	}
	logger.Info("database migrations completed")

	ctx := context.Background()
	redisClient, err := config.NewRedis(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer closeResources(logger, db, redisClient)

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	followerRepo := dbadapter.NewFollowerRepositoryDatabase(db)
	cache := redisadapter.NewCacheStoreRedis(redisClient)

	feedSvc := feedapp.NewFeedService(postRepo, cache, logger)
	postSvc := postapp.NewPostService(postRepo, userRepo, feedSvc, logger)
	userSvc := userapp.NewUserService(userRepo, postRepo, followerRepo, logger, []byte(cfg.JWTSecret))
	followerSvc := followerapp.NewFollowerService(followerRepo)

	r := httpapi.SetupRoutes(userSvc, feedSvc, postSvc, followerSvc, []byte(cfg.JWTSecret))

	logger.Info("app is running", zap.String("port", cfg.AppPort))
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger, db *gorm.DB, redisClient *redis.Client) {
	if err := redisClient.Close(); err != nil {
		logger.Error("error closing redis connection", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("error getting raw DB handle", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing database connection", zap.Error(err))
	}
}
