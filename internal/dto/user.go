package dto

import (
	"time"

	"github.com/onboardai/task-engine/internal/models"
)

// UpsertUserRequest is the write payload for PUT /api/users
type UpsertUserRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Email  string `json:"email" binding:"omitempty,email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		UserID:    user.UserID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserDTOs converts a slice of User models
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = ToUserDTO(u)
	}
	return dtos
}
