package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type ReferenceListQuery struct {
	Search string `json:"search" validate:"omitempty,max=255"`
	Order  string `json:"order" validate:"omitempty,oneof=asc desc"`
	Page   int    `json:"page" validate:"gte=0"`
	Limit  int    `json:"limit" validate:"gte=0"`
}

type ReferenceRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

// Response DTOs

type ReferenceResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SpecialtyResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}
