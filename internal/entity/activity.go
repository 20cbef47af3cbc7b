package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity references its user by email value, not by foreign key. Duration is
// minutes, Distance is kilometers (0 for non-distance activities). CaloriesBurned
// is fixed at creation time and never recomputed.
type Activity struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserEmail      string    `gorm:"size:255;index;not null" json:"user_email"`
	ActivityType   string    `gorm:"size:255;not null" json:"activity_type"`
	Duration       int       `gorm:"not null" json:"duration"`
	Distance       float64   `gorm:"default:0" json:"distance"`
	CaloriesBurned int       `gorm:"not null" json:"calories_burned"`
	Date           time.Time `gorm:"not null" json:"date"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
