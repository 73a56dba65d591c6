package handler

import (
	"encoding/json"
	"net/http"

	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/delivery/http/middleware"
	"clinic-records-api/internal/usecase"
	"clinic-records-api/pkg/response"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if err := decodeWrapped(r, "user", &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.userUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrUserNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.userUsecase.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrUserNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	var req dto.UserRequest
	if err := decodeWrapped(r, "user", &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.userUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, usecase.ErrUserNotFound)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.userUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}

// Login takes top-level credentials, not a wrapped body.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Unauthorized(w, "Invalid email or password")
		return
	}

	login, err := h.userUsecase.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Login successful", login)
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.userUsecase.Logout(r.Context(), identity.UserID, identity.TokenID); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := h.userUsecase.Get(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}
