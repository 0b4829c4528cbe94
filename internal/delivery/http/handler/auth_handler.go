package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/service"
	"truedoc-admin/internal/usecase"
	"truedoc-admin/pkg/response"
	"truedoc-admin/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles moderator login
// @Summary Login moderator
// @Description Sign in with email and password. Only moderators keep the session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, usecase.ErrNotModerator):
			response.Forbidden(w, "Access restricted to moderators")
		default:
			failure(w, err, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", token)
}

// Logout handles moderator logout
// @Summary Logout moderator
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authUsecase.Logout(r.Context()); err != nil {
		if errors.Is(err, usecase.ErrNoSession) {
			response.Unauthorized(w, "No active session")
			return
		}
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// Me returns the moderator behind the current session
// @Summary Get current moderator
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	moderator, err := h.authUsecase.Me(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoSession):
			response.Unauthorized(w, "No active session")
		case errors.Is(err, usecase.ErrNotModerator):
			response.Forbidden(w, "Access restricted to moderators")
		default:
			failure(w, err, "Failed to get moderator info")
		}
		return
	}

	response.Success(w, http.StatusOK, "Moderator retrieved successfully", moderator)
}
