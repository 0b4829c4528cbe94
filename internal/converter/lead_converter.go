package converter

import (
	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
)

// LeadToResponse converts a Lead entity to LeadResponse DTO
func LeadToResponse(lead *entity.Lead) *dto.LeadResponse {
	if lead == nil {
		return nil
	}

	return &dto.LeadResponse{
		ID:        lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Source:    lead.Source,
		Status:    lead.Status,
		Notes:     lead.Notes,
		CreatedAt: lead.CreatedAt,
	}
}

// LeadsToResponses converts a slice of Lead entities to slice of LeadResponse DTOs
func LeadsToResponses(leads []entity.Lead) []dto.LeadResponse {
	responses := make([]dto.LeadResponse, len(leads))
	for i := range leads {
		responses[i] = *LeadToResponse(&leads[i])
	}
	return responses
}
