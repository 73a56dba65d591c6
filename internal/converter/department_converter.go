package converter

import (
	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
)

func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
		CreatedAt:   department.CreatedAt,
		UpdatedAt:   department.UpdatedAt,
	}
}

func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i, department := range departments {
		responses[i] = *DepartmentToResponse(&department)
	}
	return responses
}

func DepartmentToSummary(department *entity.Department) *dto.DepartmentSummary {
	return &dto.DepartmentSummary{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
	}
}

func DepartmentToRef(department *entity.Department) *dto.DepartmentRef {
	return &dto.DepartmentRef{
		ID:   department.ID,
		Name: department.Name,
	}
}
