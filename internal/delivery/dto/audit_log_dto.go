package dto

import (
	"time"

	"truedoc-admin/internal/domain/entity"

	"github.com/google/uuid"
)

// Response DTOs

type AuditLogResponse struct {
	ID         int64       `json:"id"`
	AccountID  *uuid.UUID  `json:"account_id,omitempty"`
	ActorEmail string      `json:"actor_email,omitempty"`
	Action     string      `json:"action"`
	Metadata   entity.JSON `json:"metadata"`
	CreatedAt  time.Time   `json:"created_at"`
}
