package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents an authenticated user of the system. One profile per
// identity; the role string is informational (e.g. "teacher", "admin").
type Profile struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Role         string     `json:"role"`
	PasswordHash string     `json:"-"`
	CollegeID    *uuid.UUID `json:"college_id,omitempty"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SignUpRequest is the payload for registering a new profile.
// Accounts are auto-confirmed; a successful sign-up returns a token.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
}

// SignInRequest is the payload for authenticating a profile.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// UpdateProfileRequest is the payload for editing the signed-in profile.
type UpdateProfileRequest struct {
	FullName  string  `json:"full_name" binding:"required,min=2,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url,max=500"`
}

// ChangePasswordRequest is the payload for changing the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required,min=6,max=128"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=128"`
}
