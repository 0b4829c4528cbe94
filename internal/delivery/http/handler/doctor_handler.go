package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/usecase"
	"truedoc-admin/pkg/response"
	"truedoc-admin/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// GetAllDoctors lists doctors labelled with their approval state
// @Summary List doctors
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param search query string false "Name, email or CRM"
// @Param state query string false "pending, approved or approved_with_pending_changes"
// @Param sort query string false "nome, crm, created_at or email"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /admin/doctors [get]
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, limit, err := pageParams(q)
	if err != nil {
		response.BadRequest(w, "Invalid pagination parameters")
		return
	}

	query := dto.DoctorListQuery{
		Search: q.Get("search"),
		State:  q.Get("state"),
		Sort:   q.Get("sort"),
		Order:  q.Get("order"),
		Page:   page,
		Limit:  limit,
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, info, err := h.doctorUsecase.ListDoctors(r.Context(), &query)
	if err != nil {
		failure(w, err, "Failed to get doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", doctors,
		response.NewMeta(info.Page, info.Limit, info.Total))
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuidVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		failure(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuidVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.Conflict(w, "Email already exists")
		case errors.Is(err, usecase.ErrUniversityNotFound):
			response.BadRequest(w, "University not found")
		default:
			failure(w, err, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuidVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}
	locationID, err := uuidVar(r, "locationId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
		return
	}

	var req dto.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	location, err := h.doctorUsecase.UpdateLocation(r.Context(), doctorID, locationID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrLocationNotFound) {
			response.NotFound(w, "Location not found")
			return
		}
		failure(w, err, "Failed to update location")
		return
	}

	response.Success(w, http.StatusOK, "Location updated successfully", location)
}

func (h *DoctorHandler) UpdateSpecialtyInstitution(w http.ResponseWriter, r *http.Request) {
	claimID, err := uuidVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid claim ID", nil)
		return
	}

	var req dto.UpdateSpecialtyInstitutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateSpecialtyInstitution(r.Context(), claimID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInstitution):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrInstitutionNotFound):
			response.BadRequest(w, "Institution not found")
		case errors.Is(err, usecase.ErrClaimNotFound):
			response.NotFound(w, "Specialty claim not found")
		default:
			failure(w, err, "Failed to update specialty institution")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty institution updated successfully", doctor)
}
