package handler

import (
	"net/http"

	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/usecase"
	"clinic-records-api/pkg/response"
)

type DepartmentHandler struct {
	departmentUsecase usecase.DepartmentUsecase
}

func NewDepartmentHandler(departmentUsecase usecase.DepartmentUsecase) *DepartmentHandler {
	return &DepartmentHandler{
		departmentUsecase: departmentUsecase,
	}
}

func (h *DepartmentHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req dto.DepartmentRequest
	if err := decodeWrapped(r, "department", &req); err != nil {
		writeError(w, err)
		return
	}

	department, err := h.departmentUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", department)
}

func (h *DepartmentHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrDepartmentNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	department, err := h.departmentUsecase.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Department retrieved successfully", department)
}

func (h *DepartmentHandler) GetAllDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentUsecase.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *DepartmentHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrDepartmentNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	var req dto.DepartmentRequest
	if err := decodeWrapped(r, "department", &req); err != nil {
		writeError(w, err)
		return
	}

	department, err := h.departmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Department updated successfully", department)
}

func (h *DepartmentHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrDepartmentNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.departmentUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}
