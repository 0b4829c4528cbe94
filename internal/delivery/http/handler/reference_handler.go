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
)

// ReferenceHandler serves one reference table. The router mounts one per kind.
type ReferenceHandler struct {
	kind             entity.ReferenceKind
	referenceUsecase usecase.ReferenceUsecase
	validator        *validator.CustomValidator
}

func NewReferenceHandler(kind entity.ReferenceKind, referenceUsecase usecase.ReferenceUsecase, validator *validator.CustomValidator) *ReferenceHandler {
	return &ReferenceHandler{
		kind:             kind,
		referenceUsecase: referenceUsecase,
		validator:        validator,
	}
}

func (h *ReferenceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, limit, err := pageParams(q)
	if err != nil {
		response.BadRequest(w, "Invalid pagination parameters")
		return
	}

	query := dto.ReferenceListQuery{
		Search: q.Get("search"),
		Order:  q.Get("order"),
		Page:   page,
		Limit:  limit,
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	refs, info, err := h.referenceUsecase.List(r.Context(), h.kind, &query)
	if err != nil {
		failure(w, err, "Failed to get references")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "References retrieved successfully", refs,
		response.NewMeta(info.Page, info.Limit, info.Total))
}

func (h *ReferenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ref, err := h.referenceUsecase.Create(r.Context(), h.kind, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInstitutionExists):
			response.Conflict(w, "Institution already exists")
		case errors.Is(err, usecase.ErrReferenceExists):
			response.Conflict(w, "Name already exists")
		default:
			failure(w, err, "Failed to create reference")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Reference created successfully", ref)
}

func (h *ReferenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID", nil)
		return
	}

	var req dto.ReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ref, err := h.referenceUsecase.Update(r.Context(), h.kind, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReferenceNotFound):
			response.NotFound(w, "Reference not found")
		case errors.Is(err, usecase.ErrReferenceExists):
			response.Conflict(w, "Name already exists")
		default:
			failure(w, err, "Failed to update reference")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reference updated successfully", ref)
}

func (h *ReferenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID", nil)
		return
	}

	if err := h.referenceUsecase.Delete(r.Context(), h.kind, id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrReferenceNotFound):
			response.NotFound(w, "Reference not found")
		case errors.Is(err, usecase.ErrReferenceInUse):
			response.Conflict(w, "Reference is still used by doctors")
		default:
			failure(w, err, "Failed to delete reference")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reference deleted successfully", nil)
}

// SpecialtyHandler serves the read-only specialty list
type SpecialtyHandler struct {
	referenceUsecase usecase.ReferenceUsecase
}

func NewSpecialtyHandler(referenceUsecase usecase.ReferenceUsecase) *SpecialtyHandler {
	return &SpecialtyHandler{referenceUsecase: referenceUsecase}
}

func (h *SpecialtyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.referenceUsecase.ListSpecialties(r.Context())
	if err != nil {
		failure(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
