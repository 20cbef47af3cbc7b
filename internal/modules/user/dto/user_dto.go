package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"required,email"`
	Team  string `json:"team" binding:"max=255"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"required,email"`
	Team  string `json:"team" binding:"max=255"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Team      string    `json:"team"`
	CreatedAt time.Time `json:"created_at"`
}
