package dto

import (
	"time"

	"truedoc-admin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type DoctorListQuery struct {
	Search string `json:"search" validate:"omitempty,max=255"`
	State  string `json:"state" validate:"omitempty,oneof=pending approved approved_with_pending_changes"`
	Sort   string `json:"sort" validate:"omitempty,oneof=nome crm created_at email"`
	Order  string `json:"order" validate:"omitempty,oneof=asc desc"`
	Page   int    `json:"page" validate:"gte=0"`
	Limit  int    `json:"limit" validate:"gte=0"`
}

// UpdateDoctorRequest edits a doctor's profile. Nil fields are left untouched.
// An empty PendingLicenseRenewal clears the resubmitted license code.
type UpdateDoctorRequest struct {
	Name                  *string      `json:"name" validate:"omitempty,min=2,max=255"`
	LicenseNumber         *string      `json:"license_number" validate:"omitempty,max=50"`
	Email                 *string      `json:"email" validate:"omitempty,email"`
	Approved              *bool        `json:"approved"`
	RQE                   *string      `json:"rqe" validate:"omitempty,max=50"`
	PendingLicenseRenewal *string      `json:"pending_license_renewal" validate:"omitempty,max=50"`
	Website               *string      `json:"website" validate:"omitempty,max=255"`
	Description           *string      `json:"description"`
	UniversityID          *uuid.UUID   `json:"university_id"`
	UniversityOther       *string      `json:"university_other" validate:"omitempty,max=255"`
	ContactForm           *string      `json:"contact_form" validate:"omitempty,max=50"`
	Contact               *string      `json:"contact" validate:"omitempty,max=255"`
	Facebook              *string      `json:"facebook" validate:"omitempty,max=255"`
	Instagram             *string      `json:"instagram" validate:"omitempty,max=255"`
	TikTok                *string      `json:"tiktok" validate:"omitempty,max=255"`
	LinkedIn              *string      `json:"linkedin" validate:"omitempty,max=255"`
	Twitter               *string      `json:"twitter" validate:"omitempty,max=255"`
	Telehealth            *bool        `json:"telehealth"`
	InsuranceOther        *string      `json:"insurance_other" validate:"omitempty,max=255"`
	InsurancePlanIDs      *[]uuid.UUID `json:"insurance_plan_ids"`
}

type UpdateLocationRequest struct {
	Label      string           `json:"label" validate:"omitempty,max=255"`
	PostalCode string           `json:"postal_code" validate:"required,max=20"`
	Street     string           `json:"street" validate:"required,max=255"`
	Number     string           `json:"number" validate:"omitempty,max=20"`
	Complement *string          `json:"complement" validate:"omitempty,max=255"`
	District   string           `json:"district" validate:"required,max=255"`
	City       string           `json:"city" validate:"required,max=255"`
	State      string           `json:"state" validate:"required,len=2"`
	Phone      string           `json:"phone" validate:"omitempty,max=50"`
	Latitude   *decimal.Decimal `json:"latitude"`
	Longitude  *decimal.Decimal `json:"longitude"`
}

// Response DTOs

type DoctorListItemResponse struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	LicenseNumber string               `json:"license_number"`
	Email         string               `json:"email"`
	Approved      bool                 `json:"approved"`
	State         entity.ApprovalState `json:"state"`
	CreatedAt     time.Time            `json:"created_at"`
}

type DoctorDetailResponse struct {
	ID                    uuid.UUID                `json:"id"`
	Name                  string                   `json:"name"`
	LicenseNumber         string                   `json:"license_number"`
	Email                 string                   `json:"email"`
	Approved              bool                     `json:"approved"`
	Moderator             bool                     `json:"moderator"`
	State                 entity.ApprovalState     `json:"state"`
	PendingReasons        []entity.PendingReason   `json:"pending_reasons"`
	RQE                   *string                  `json:"rqe,omitempty"`
	PendingLicenseRenewal *string                  `json:"pending_license_renewal,omitempty"`
	Website               string                   `json:"website,omitempty"`
	Description           string                   `json:"description,omitempty"`
	University            *ReferenceResponse       `json:"university,omitempty"`
	UniversityOther       string                   `json:"university_other,omitempty"`
	ContactForm           string                   `json:"contact_form,omitempty"`
	Contact               string                   `json:"contact,omitempty"`
	Facebook              string                   `json:"facebook,omitempty"`
	Instagram             string                   `json:"instagram,omitempty"`
	TikTok                string                   `json:"tiktok,omitempty"`
	LinkedIn              string                   `json:"linkedin,omitempty"`
	Twitter               string                   `json:"twitter,omitempty"`
	Telehealth            bool                     `json:"telehealth"`
	InsuranceOther        string                   `json:"insurance_other,omitempty"`
	Specialties           []SpecialtyClaimResponse `json:"specialties"`
	Subspecialties        []ClaimResponse          `json:"subspecialties"`
	OtherTrainings        []ClaimResponse          `json:"other_trainings"`
	InsurancePlans        []ReferenceResponse      `json:"insurance_plans"`
	Locations             []LocationResponse       `json:"locations"`
	CreatedAt             time.Time                `json:"created_at"`
}

type SpecialtyClaimResponse struct {
	ID                  uuid.UUID          `json:"id"`
	Specialty           *SpecialtyResponse `json:"specialty,omitempty"`
	Institution         *ReferenceResponse `json:"institution,omitempty"`
	InstitutionOther    *string            `json:"institution_other,omitempty"`
	ShowOnPublicProfile bool               `json:"show_on_public_profile"`
	Approved            bool               `json:"approved"`
}

// ClaimResponse covers subspecialty and other-training claims.
// ShowOnPublicProfile is nil for subspecialties, which have no visibility flag.
type ClaimResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Institution         *string   `json:"institution,omitempty"`
	ShowOnPublicProfile *bool     `json:"show_on_public_profile,omitempty"`
	Approved            bool      `json:"approved"`
}

type LocationResponse struct {
	ID         uuid.UUID        `json:"id"`
	Label      string           `json:"label"`
	PostalCode string           `json:"postal_code"`
	Street     string           `json:"street"`
	Number     string           `json:"number"`
	Complement *string          `json:"complement,omitempty"`
	District   string           `json:"district"`
	City       string           `json:"city"`
	State      string           `json:"state"`
	Phone      string           `json:"phone"`
	Latitude   *decimal.Decimal `json:"latitude,omitempty"`
	Longitude  *decimal.Decimal `json:"longitude,omitempty"`
}

// DashboardResponse carries the overview counters. ApprovedDoctors counts every approved
// doctor, PendingChangesDoctors included.
type DashboardResponse struct {
	PendingDoctors        int64 `json:"pending_doctors"`
	ApprovedDoctors       int64 `json:"approved_doctors"`
	PendingChangesDoctors int64 `json:"pending_changes_doctors"`
	TotalLeads            int64 `json:"total_leads"`
}
