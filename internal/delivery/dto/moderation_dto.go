package dto

import (
	"truedoc-admin/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type SetApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

type SetVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

type ReplaceInsurancePlansRequest struct {
	InsurancePlanIDs []uuid.UUID `json:"insurance_plan_ids" validate:"required"`
}

type UpdateSpecialtyInstitutionRequest struct {
	InstitutionID    *uuid.UUID `json:"institution_id"`
	InstitutionOther *string    `json:"institution_other" validate:"omitempty,max=255"`
}

// Response DTOs

// DoctorStatusResponse is the freshly resolved state of a doctor after a moderation write
type DoctorStatusResponse struct {
	DoctorID       uuid.UUID              `json:"doctor_id"`
	Approved       bool                   `json:"approved"`
	State          entity.ApprovalState   `json:"state"`
	PendingReasons []entity.PendingReason `json:"pending_reasons"`
}
