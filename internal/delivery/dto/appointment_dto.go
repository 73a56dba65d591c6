package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AppointmentRequest struct {
	AppointmentDate *string `json:"appointment_date"` // RFC 3339
	Status          *string `json:"status"`
	PatientID       *string `json:"patient_id"`
	DoctorID        *string `json:"doctor_id"`
	DepartmentID    *string `json:"department_id"`
	Notes           *string `json:"notes"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	AppointmentDate time.Time       `json:"appointment_date"`
	Status          string          `json:"status"`
	PatientID       uuid.UUID       `json:"patient_id"`
	DoctorID        uuid.UUID       `json:"doctor_id"`
	DepartmentID    uuid.UUID       `json:"department_id"`
	Notes           string          `json:"notes"`
	Patient         *PatientSummary `json:"patient"`
	Doctor          *DoctorSummary  `json:"doctor"`
	Department      *DepartmentRef  `json:"department"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// AppointmentRef is an appointment listed under its doctor or patient,
// with its own columns only.
type AppointmentRef struct {
	ID              uuid.UUID `json:"id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          string    `json:"status"`
	PatientID       uuid.UUID `json:"patient_id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	DepartmentID    uuid.UUID `json:"department_id"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
