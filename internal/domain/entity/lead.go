package entity

import "time"

// Lead statuses
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusConverted = "converted"
)

// Lead is a marketing contact captured by the public site
type Lead struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);index" json:"email"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Source    string    `gorm:"type:varchar(100);index" json:"source"`
	Status    string    `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Lead) TableName() string {
	return "lead"
}

// LeadFilter is a domain-level filter for listing leads.
type LeadFilter struct {
	Search    string // ILIKE over name, email and phone
	Status    string
	Source    string
	StartDate string // Format: YYYY-MM-DD, inclusive
	EndDate   string // Format: YYYY-MM-DD, inclusive
	Sort      Sort
	Page      Page
}
