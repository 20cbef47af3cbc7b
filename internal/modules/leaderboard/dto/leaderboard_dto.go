package dto

import (
	"time"

	"github.com/google/uuid"
)

// NoTeamLabel is rendered when an entry's user cannot be resolved or carries no
// team label.
const NoTeamLabel = "No Team"

type CreateEntryRequest struct {
	UserEmail       string `json:"user_email" binding:"required,email"`
	TotalPoints     int    `json:"total_points" binding:"gte=0"`
	TotalCalories   int    `json:"total_calories" binding:"gte=0"`
	TotalActivities int    `json:"total_activities" binding:"gte=0"`
	Rank            int    `json:"rank" binding:"required,gt=0"`
}

type UpdateEntryRequest struct {
	UserEmail       string `json:"user_email" binding:"required,email"`
	TotalPoints     int    `json:"total_points" binding:"gte=0"`
	TotalCalories   int    `json:"total_calories" binding:"gte=0"`
	TotalActivities int    `json:"total_activities" binding:"gte=0"`
	Rank            int    `json:"rank" binding:"required,gt=0"`
}

// EntryResponse carries the stored snapshot plus display fields resolved from
// the current User record at render time.
type EntryResponse struct {
	ID              uuid.UUID `json:"id"`
	UserEmail       string    `json:"user_email"`
	DisplayName     string    `json:"display_name"`
	Team            string    `json:"team"`
	TotalPoints     int       `json:"total_points"`
	TotalCalories   int       `json:"total_calories"`
	TotalActivities int       `json:"total_activities"`
	Rank            int       `json:"rank"`
	UpdatedAt       time.Time `json:"updated_at"`
}
