package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a moderation audit trail entry
type AuditLog struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID  *uuid.UUID `gorm:"type:uuid;index" json:"account_id,omitempty"`
	ActorEmail string     `gorm:"type:varchar(255);index" json:"actor_email,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata   JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Moderation audit actions
const (
	AuditActionModeratorLogin         = "moderator.login"
	AuditActionModeratorLogout        = "moderator.logout"
	AuditActionDoctorApproval         = "moderation.doctor_approval"
	AuditActionClaimApproval          = "moderation.claim_approval"
	AuditActionClaimVisibility        = "moderation.claim_visibility"
	AuditActionInsurancePlansReplace  = "moderation.insurance_plans_replace"
	AuditActionDoctorUpdate           = "doctor.update"
	AuditActionLocationUpdate         = "doctor.location_update"
	AuditActionClaimInstitutionUpdate = "doctor.claim_institution_update"
	AuditActionReferenceCreate        = "reference.create"
	AuditActionReferenceUpdate        = "reference.update"
	AuditActionReferenceDelete        = "reference.delete"
	AuditActionLeadCreate             = "lead.create"
	AuditActionLeadUpdate             = "lead.update"
	AuditActionLeadDelete             = "lead.delete"
)
