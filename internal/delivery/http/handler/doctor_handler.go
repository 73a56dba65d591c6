package handler

import (
	"net/http"

	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/usecase"
	"clinic-records-api/pkg/response"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.DoctorRequest
	if err := decodeWrapped(r, "doctor", &req); err != nil {
		writeError(w, err)
		return
	}

	doctor, err := h.doctorUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrDoctorNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	doctor, err := h.doctorUsecase.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrDoctorNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	var req dto.DoctorRequest
	if err := decodeWrapped(r, "doctor", &req); err != nil {
		writeError(w, err)
		return
	}

	doctor, err := h.doctorUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrDoctorNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.doctorUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}
