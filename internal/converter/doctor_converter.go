package converter

import (
	"fmt"

	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
)

// DoctorToResponse embeds the doctor's department, which must be preloaded,
// and whatever appointments were loaded with it.
func DoctorToResponse(doctor *entity.Doctor) (*dto.DoctorResponse, error) {
	if doctor.Department == nil {
		return nil, fmt.Errorf("doctor %s department %s: %w", doctor.ID, doctor.DepartmentID, ErrMissingAssociation)
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Specialization: doctor.Specialization,
		DepartmentID:   doctor.DepartmentID,
		Department:     DepartmentToSummary(doctor.Department),
		Appointments:   AppointmentsToRefs(doctor.Appointments),
		CreatedAt:      doctor.CreatedAt,
		UpdatedAt:      doctor.UpdatedAt,
	}, nil
}

func DoctorsToResponses(doctors []entity.Doctor) ([]dto.DoctorResponse, error) {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		response, err := DoctorToResponse(&doctor)
		if err != nil {
			return nil, err
		}
		responses[i] = *response
	}
	return responses, nil
}

func DoctorToSummary(doctor *entity.Doctor) *dto.DoctorSummary {
	return &dto.DoctorSummary{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Specialization: doctor.Specialization,
	}
}
