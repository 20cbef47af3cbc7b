package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/octofitapp/octofit-tracker/internal/bootstrap"
	"github.com/octofitapp/octofit-tracker/internal/config"
	activityRepo "github.com/octofitapp/octofit-tracker/internal/modules/activity/repository"
	leaderboardRepo "github.com/octofitapp/octofit-tracker/internal/modules/leaderboard/repository"
	leaderboardService "github.com/octofitapp/octofit-tracker/internal/modules/leaderboard/service"
	userRepo "github.com/octofitapp/octofit-tracker/internal/modules/user/repository"
	"github.com/octofitapp/octofit-tracker/internal/seed"
	"github.com/octofitapp/octofit-tracker/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	}

	lbSvc := leaderboardService.NewLeaderboardService(
		leaderboardRepo.NewLeaderboardRepository(db),
		activityRepo.NewActivityRepository(db),
		userRepo.NewUserRepository(db),
		redisClient,
		cfg.LeaderboardCacheTTL,
		cfg.RecomputeLockTTL,
	)

	if err := seed.Run(context.Background(), db, lbSvc); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}
