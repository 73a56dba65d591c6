package handler

import (
	"net/http"

	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/usecase"
	"clinic-records-api/pkg/response"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := decodeWrapped(r, "patient", &req); err != nil {
		writeError(w, err)
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrPatientNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrPatientNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	var req dto.PatientRequest
	if err := decodeWrapped(r, "patient", &req); err != nil {
		writeError(w, err)
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrPatientNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}
