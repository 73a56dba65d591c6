package converter

import (
	"fmt"

	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
)

// AppointmentToResponse embeds patient, doctor and department one level deep.
// The embedded doctor does not carry its own department.
func AppointmentToResponse(appointment *entity.Appointment) (*dto.AppointmentResponse, error) {
	switch {
	case appointment.Patient == nil:
		return nil, fmt.Errorf("appointment %s patient %s: %w", appointment.ID, appointment.PatientID, ErrMissingAssociation)
	case appointment.Doctor == nil:
		return nil, fmt.Errorf("appointment %s doctor %s: %w", appointment.ID, appointment.DoctorID, ErrMissingAssociation)
	case appointment.Department == nil:
		return nil, fmt.Errorf("appointment %s department %s: %w", appointment.ID, appointment.DepartmentID, ErrMissingAssociation)
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          string(appointment.Status),
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		DepartmentID:    appointment.DepartmentID,
		Notes:           appointment.Notes,
		Patient:         PatientToSummary(appointment.Patient),
		Doctor:          DoctorToSummary(appointment.Doctor),
		Department:      DepartmentToRef(appointment.Department),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}, nil
}

func AppointmentsToResponses(appointments []entity.Appointment) ([]dto.AppointmentResponse, error) {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		response, err := AppointmentToResponse(&appointment)
		if err != nil {
			return nil, err
		}
		responses[i] = *response
	}
	return responses, nil
}

func AppointmentToRef(appointment *entity.Appointment) dto.AppointmentRef {
	return dto.AppointmentRef{
		ID:              appointment.ID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          string(appointment.Status),
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		DepartmentID:    appointment.DepartmentID,
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// AppointmentsToRefs never returns nil so an empty list renders as [].
func AppointmentsToRefs(appointments []entity.Appointment) []dto.AppointmentRef {
	refs := make([]dto.AppointmentRef, len(appointments))
	for i := range appointments {
		refs[i] = AppointmentToRef(&appointments[i])
	}
	return refs
}
