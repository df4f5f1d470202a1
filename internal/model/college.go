package model

import (
	"time"

	"github.com/google/uuid"
)

// College represents a registered institution. Students and profiles
// reference a college.
type College struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCollegeRequest is the payload for creating or updating a college.
type CreateCollegeRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=200"`
	Code    string  `json:"code" binding:"required,min=2,max=20"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}
