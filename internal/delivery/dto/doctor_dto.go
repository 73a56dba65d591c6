package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type DoctorRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	DepartmentID   *string `json:"department_id"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone"`
	Specialization string             `json:"specialization"`
	DepartmentID   uuid.UUID          `json:"department_id"`
	Department     *DepartmentSummary `json:"department"`
	Appointments   []AppointmentRef   `json:"appointments"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// DoctorSummary is embedded in appointments without its department.
type DoctorSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Specialization string    `json:"specialization"`
}
