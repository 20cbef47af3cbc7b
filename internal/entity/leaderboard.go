package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardEntry is a derived per-user snapshot. The whole set is discarded and
// regenerated on every scoring run; it has no source of truth of its own.
type LeaderboardEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserEmail       string    `gorm:"size:255;index;not null" json:"user_email"`
	TotalPoints     int       `gorm:"default:0" json:"total_points"`
	TotalCalories   int       `gorm:"not null" json:"total_calories"`
	TotalActivities int       `gorm:"not null" json:"total_activities"`
	Rank            int       `gorm:"not null" json:"rank"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard"
}

func (e *LeaderboardEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
