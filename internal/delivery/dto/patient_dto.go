package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type PatientRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birth_date"` // Format: YYYY-MM-DD, empty string clears it
	Address   *string `json:"address"`
}

// Response DTOs

type PatientResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	BirthDate    *string          `json:"birth_date"`
	Address      string           `json:"address"`
	Appointments []AppointmentRef `json:"appointments"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type PatientSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}
