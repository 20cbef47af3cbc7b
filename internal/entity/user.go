package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User carries a free-text Team label rather than a foreign key: a user may
// reference a team name that has no Team record, and nothing enforces the link.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Team      string    `gorm:"size:255" json:"team"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
