package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// DepartmentRequest is used for create and partial update; nil fields are left unchanged.
type DepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Response DTOs

type DepartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DepartmentSummary is the embedded form used inside doctors.
type DepartmentSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// DepartmentRef is the embedded form used inside appointments.
type DepartmentRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
