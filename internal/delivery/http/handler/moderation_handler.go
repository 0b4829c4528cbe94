package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/usecase"
	"truedoc-admin/pkg/response"
	"truedoc-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ModerationHandler exposes the approval toggles. Every success returns the doctor's
// freshly resolved status.
type ModerationHandler struct {
	moderationUsecase usecase.ModerationUsecase
	validator         *validator.CustomValidator
}

func NewModerationHandler(moderationUsecase usecase.ModerationUsecase, validator *validator.CustomValidator) *ModerationHandler {
	return &ModerationHandler{
		moderationUsecase: moderationUsecase,
		validator:         validator,
	}
}

func (h *ModerationHandler) SetDoctorApproval(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuidVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.SetApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	status, err := h.moderationUsecase.SetDoctorApproved(r.Context(), doctorID, *req.Approved)
	if err != nil {
		h.moderationFailure(w, err, "Failed to update doctor approval")
		return
	}

	response.Success(w, http.StatusOK, "Doctor approval updated successfully", status)
}

func (h *ModerationHandler) SetClaimApproval(w http.ResponseWriter, r *http.Request) {
	kind, claimID, ok := claimVars(w, r)
	if !ok {
		return
	}

	var req dto.SetApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	status, err := h.moderationUsecase.SetClaimApproved(r.Context(), kind, claimID, *req.Approved)
	if err != nil {
		h.moderationFailure(w, err, "Failed to update claim approval")
		return
	}

	response.Success(w, http.StatusOK, "Claim approval updated successfully", status)
}

func (h *ModerationHandler) SetClaimVisibility(w http.ResponseWriter, r *http.Request) {
	kind, claimID, ok := claimVars(w, r)
	if !ok {
		return
	}

	var req dto.SetVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	status, err := h.moderationUsecase.SetClaimVisibility(r.Context(), kind, claimID, *req.Visible)
	if err != nil {
		h.moderationFailure(w, err, "Failed to update claim visibility")
		return
	}

	response.Success(w, http.StatusOK, "Claim visibility updated successfully", status)
}

func (h *ModerationHandler) ReplaceInsurancePlans(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuidVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.ReplaceInsurancePlansRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	status, err := h.moderationUsecase.ReplaceDoctorInsurancePlans(r.Context(), doctorID, req.InsurancePlanIDs)
	if err != nil {
		h.moderationFailure(w, err, "Failed to replace insurance plans")
		return
	}

	response.Success(w, http.StatusOK, "Insurance plans replaced successfully", status)
}

func (h *ModerationHandler) moderationFailure(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrClaimNotFound):
		response.NotFound(w, "Claim not found")
	case errors.Is(err, usecase.ErrUnsupportedClaimKind):
		response.BadRequest(w, "Claims of this kind have no public profile visibility")
	default:
		failure(w, err, fallback)
	}
}

func claimVars(w http.ResponseWriter, r *http.Request) (entity.ClaimKind, uuid.UUID, bool) {
	kind, err := entity.ParseClaimKind(mux.Vars(r)["kind"])
	if err != nil {
		response.NotFound(w, "Unknown claim kind")
		return "", uuid.Nil, false
	}
	claimID, err := uuidVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid claim ID", nil)
		return "", uuid.Nil, false
	}
	return kind, claimID, true
}
