package bootstrap

import (
	"github.com/octofitapp/octofit-tracker/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Team{},
		&entity.Activity{},
		&entity.LeaderboardEntry{},
		&entity.Workout{},
	)
}
