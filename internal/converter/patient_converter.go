package converter

import (
	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
)

const birthDateLayout = "2006-01-02"

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	response := &dto.PatientResponse{
		ID:           patient.ID,
		Name:         patient.Name,
		Email:        patient.Email,
		Phone:        patient.Phone,
		Address:      patient.Address,
		Appointments: AppointmentsToRefs(patient.Appointments),
		CreatedAt:    patient.CreatedAt,
		UpdatedAt:    patient.UpdatedAt,
	}
	if patient.BirthDate != nil {
		birthDate := patient.BirthDate.Format(birthDateLayout)
		response.BirthDate = &birthDate
	}
	return response
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToResponse(&patient)
	}
	return responses
}

func PatientToSummary(patient *entity.Patient) *dto.PatientSummary {
	return &dto.PatientSummary{
		ID:    patient.ID,
		Name:  patient.Name,
		Email: patient.Email,
		Phone: patient.Phone,
	}
}
