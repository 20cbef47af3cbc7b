package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateActivityRequest struct {
	UserEmail    string    `json:"user_email" binding:"required,email"`
	ActivityType string    `json:"activity_type" binding:"required,max=255"`
	Duration     int       `json:"duration" binding:"required,gt=0"`
	Distance     float64   `json:"distance" binding:"gte=0"`
	// CaloriesBurned is optional; when omitted it is derived from the
	// activity type's calorie rate and the duration.
	CaloriesBurned int       `json:"calories_burned" binding:"gte=0"`
	Date           time.Time `json:"date" binding:"required"`
}

type UpdateActivityRequest struct {
	UserEmail      string    `json:"user_email" binding:"required,email"`
	ActivityType   string    `json:"activity_type" binding:"required,max=255"`
	Duration       int       `json:"duration" binding:"required,gt=0"`
	Distance       float64   `json:"distance" binding:"gte=0"`
	CaloriesBurned int       `json:"calories_burned" binding:"gte=0"`
	Date           time.Time `json:"date" binding:"required"`
}

type ActivityFilter struct {
	UserEmail string `form:"user_email"`
}

type ActivityResponse struct {
	ID             uuid.UUID `json:"id"`
	UserEmail      string    `json:"user_email"`
	ActivityType   string    `json:"activity_type"`
	Duration       int       `json:"duration"`
	Distance       float64   `json:"distance"`
	CaloriesBurned int       `json:"calories_burned"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}
