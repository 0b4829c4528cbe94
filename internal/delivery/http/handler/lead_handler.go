package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/usecase"
	"truedoc-admin/pkg/response"
	"truedoc-admin/pkg/validator"

	"github.com/gorilla/mux"
)

type LeadHandler struct {
	leadUsecase usecase.LeadUsecase
	validator   *validator.CustomValidator
}

func NewLeadHandler(leadUsecase usecase.LeadUsecase, validator *validator.CustomValidator) *LeadHandler {
	return &LeadHandler{
		leadUsecase: leadUsecase,
		validator:   validator,
	}
}

func (h *LeadHandler) GetAllLeads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, limit, err := pageParams(q)
	if err != nil {
		response.BadRequest(w, "Invalid pagination parameters")
		return
	}

	query := dto.LeadListQuery{
		Search:    q.Get("search"),
		Status:    q.Get("status"),
		Source:    q.Get("source"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Sort:      q.Get("sort"),
		Order:     q.Get("order"),
		Page:      page,
		Limit:     limit,
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	leads, info, err := h.leadUsecase.List(r.Context(), &query)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDateRange) {
			response.BadRequest(w, err.Error())
			return
		}
		failure(w, err, "Failed to get leads")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Leads retrieved successfully", leads,
		response.NewMeta(info.Page, info.Limit, info.Total))
}

func (h *LeadHandler) GetSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.leadUsecase.ListSources(r.Context())
	if err != nil {
		failure(w, err, "Failed to get lead sources")
		return
	}

	response.Success(w, http.StatusOK, "Lead sources retrieved successfully", sources)
}

func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	lead, err := h.leadUsecase.Create(r.Context(), &req)
	if err != nil {
		failure(w, err, "Failed to create lead")
		return
	}

	response.Success(w, http.StatusCreated, "Lead created successfully", lead)
}

func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lead ID", nil)
		return
	}

	var req dto.UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	lead, err := h.leadUsecase.Update(r.Context(), leadID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrLeadNotFound) {
			response.NotFound(w, "Lead not found")
			return
		}
		failure(w, err, "Failed to update lead")
		return
	}

	response.Success(w, http.StatusOK, "Lead updated successfully", lead)
}

func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lead ID", nil)
		return
	}

	if err := h.leadUsecase.Delete(r.Context(), leadID); err != nil {
		if errors.Is(err, usecase.ErrLeadNotFound) {
			response.NotFound(w, "Lead not found")
			return
		}
		failure(w, err, "Failed to delete lead")
		return
	}

	response.Success(w, http.StatusOK, "Lead deleted successfully", nil)
}
