package main

import (
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/octofitapp/octofit-tracker/internal/bootstrap"
	"github.com/octofitapp/octofit-tracker/internal/config"
	"github.com/octofitapp/octofit-tracker/internal/server"
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

	srv := server.NewServer(cfg, db, redisClient)

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
