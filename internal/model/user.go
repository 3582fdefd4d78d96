package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account, either a Teacher or a Student.
// PasswordHash is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role" binding:"required,oneof=Teacher Student"`
}

// LoginRequest is the payload for authenticating an account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the payload for modifying an account. All fields are
// optional; Role changes are restricted to teachers.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=255"`
	Email    string `json:"email" binding:"omitempty,email,max=255"`
	Password string `json:"password" binding:"omitempty,min=6,max=72"`
	Role     string `json:"role" binding:"omitempty,oneof=Teacher Student"`
}
