package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkoutRequest struct {
	Name             string `json:"name" binding:"required,max=255"`
	Description      string `json:"description" binding:"required"`
	Difficulty       string `json:"difficulty" binding:"required,max=50"`
	Duration         int    `json:"duration" binding:"required,gt=0"`
	CaloriesEstimate int    `json:"calories_estimate" binding:"required,gte=0"`
}

type UpdateWorkoutRequest struct {
	Name             string `json:"name" binding:"required,max=255"`
	Description      string `json:"description" binding:"required"`
	Difficulty       string `json:"difficulty" binding:"required,max=50"`
	Duration         int    `json:"duration" binding:"required,gt=0"`
	CaloriesEstimate int    `json:"calories_estimate" binding:"required,gte=0"`
}

type SearchWorkoutFilter struct {
	Query string `form:"q"`
	Limit int    `form:"limit"`
}

type WorkoutResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Difficulty       string    `json:"difficulty"`
	Duration         int       `json:"duration"`
	CaloriesEstimate int       `json:"calories_estimate"`
	CreatedAt        time.Time `json:"created_at"`
}
