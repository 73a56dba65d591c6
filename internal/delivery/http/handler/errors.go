package handler

import (
	"errors"
	"net/http"

	"clinic-records-api/internal/usecase"
	"clinic-records-api/pkg/response"
)

var notFoundMessages = []struct {
	err     error
	message string
}{
	{usecase.ErrDepartmentNotFound, "Department not found"},
	{usecase.ErrDoctorNotFound, "Doctor not found"},
	{usecase.ErrPatientNotFound, "Patient not found"},
	{usecase.ErrAppointmentNotFound, "Appointment not found"},
	{usecase.ErrUserNotFound, "User not found"},
}

// writeError maps usecase and request errors onto the response envelope.
// Anything unrecognized, including a missing association, is a 500.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *usecase.ValidationError
	var missingErr *MissingParameterError

	switch {
	case errors.As(err, &validationErr):
		response.ValidationError(w, validationErr.Errors)
		return
	case errors.As(err, &missingErr):
		response.BadRequest(w, missingErr.Error())
		return
	case errors.Is(err, errInvalidBody):
		response.BadRequest(w, "Invalid request body")
		return
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid email or password")
		return
	}

	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			response.NotFound(w, nf.message)
			return
		}
	}

	response.InternalServerError(w, "")
}
