package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Workout struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Description      string    `gorm:"type:text" json:"description"`
	Difficulty       string    `gorm:"size:50" json:"difficulty"`
	Duration         int       `gorm:"not null" json:"duration"`
	CaloriesEstimate int       `gorm:"not null" json:"calories_estimate"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
