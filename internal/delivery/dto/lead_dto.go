package dto

import "time"

// Request DTOs

type LeadListQuery struct {
	Search    string `json:"search" validate:"omitempty,max=255"`
	Status    string `json:"status" validate:"omitempty,oneof=new contacted converted"`
	Source    string `json:"source" validate:"omitempty,max=100"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Sort      string `json:"sort" validate:"omitempty,oneof=created_at name email status source"`
	Order     string `json:"order" validate:"omitempty,oneof=asc desc"`
	Page      int    `json:"page" validate:"gte=0"`
	Limit     int    `json:"limit" validate:"gte=0"`
}

type CreateLeadRequest struct {
	Name   string  `json:"name" validate:"required,min=2,max=255"`
	Email  string  `json:"email" validate:"required,email"`
	Phone  string  `json:"phone" validate:"omitempty,max=50"`
	Source string  `json:"source" validate:"omitempty,max=100"`
	Status string  `json:"status" validate:"omitempty,oneof=new contacted converted"`
	Notes  *string `json:"notes"`
}

type UpdateLeadRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=255"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone" validate:"omitempty,max=50"`
	Source *string `json:"source" validate:"omitempty,max=100"`
	Status *string `json:"status" validate:"omitempty,oneof=new contacted converted"`
	Notes  *string `json:"notes"`
}

// Response DTOs

type LeadResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
