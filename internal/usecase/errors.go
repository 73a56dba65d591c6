package usecase

import (
	"errors"
	"strings"
)

var (
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

const (
	msgEmailTaken               = "Email has already been taken"
	msgAppointmentDateInPast    = "Appointment date can't be in the past"
	msgPasswordMismatch         = "Password confirmation doesn't match Password"
	msgPatientHasScheduledVisit = "Patient cannot be deleted while scheduled appointments exist"
)

// ValidationError carries every rule a write violated, as full sentences.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}
