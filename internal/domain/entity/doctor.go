package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a professional record of the medical directory
type Doctor struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                  string     `gorm:"column:nome;type:varchar(255);not null" json:"name"`
	LicenseNumber         string     `gorm:"column:crm;type:varchar(50);not null;index" json:"license_number"`
	Email                 string     `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Approved              bool       `gorm:"column:aprovado;not null;default:false;index" json:"approved"`
	Moderator             bool       `gorm:"column:moderador;not null;default:false" json:"moderator"`
	RQE                   *string    `gorm:"column:rqe;type:varchar(50)" json:"rqe,omitempty"`
	PendingLicenseRenewal *string    `gorm:"column:new_rqe;type:varchar(50)" json:"pending_license_renewal,omitempty"`
	Website               string     `gorm:"type:varchar(255)" json:"website,omitempty"`
	Description           string     `gorm:"column:descricao;type:text" json:"description,omitempty"`
	UniversityID          *uuid.UUID `gorm:"column:faculdade_id;type:uuid" json:"university_id,omitempty"`
	UniversityOther       string     `gorm:"column:faculdade_outro;type:varchar(255)" json:"university_other,omitempty"`
	ContactForm           string     `gorm:"column:forma_contato;type:varchar(50)" json:"contact_form,omitempty"`
	Contact               string     `gorm:"column:contato;type:varchar(255)" json:"contact,omitempty"`
	Facebook              string     `gorm:"type:varchar(255)" json:"facebook,omitempty"`
	Instagram             string     `gorm:"type:varchar(255)" json:"instagram,omitempty"`
	TikTok                string     `gorm:"column:tiktok;type:varchar(255)" json:"tiktok,omitempty"`
	LinkedIn              string     `gorm:"column:linkedin;type:varchar(255)" json:"linkedin,omitempty"`
	Twitter               string     `gorm:"type:varchar(255)" json:"twitter,omitempty"`
	Telehealth            bool       `gorm:"column:teleconsulta;not null;default:false" json:"telehealth"`
	InsuranceOther        string     `gorm:"column:convenio_outro;type:varchar(255)" json:"insurance_other,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	University     *University           `gorm:"foreignKey:UniversityID" json:"university,omitempty"`
	Specialties    []SpecialtyClaim      `gorm:"foreignKey:DoctorID" json:"specialties,omitempty"`
	Subspecialties []SubspecialtyClaim   `gorm:"foreignKey:DoctorID" json:"subspecialties,omitempty"`
	OtherTrainings []OtherTrainingClaim  `gorm:"foreignKey:DoctorID" json:"other_trainings,omitempty"`
	InsurancePlans []DoctorInsurancePlan `gorm:"foreignKey:DoctorID" json:"insurance_plans,omitempty"`
	Locations      []Location            `gorm:"foreignKey:DoctorID" json:"locations,omitempty"`
}

func (Doctor) TableName() string {
	return "medico"
}

// ApprovalState resolves the doctor's derived moderation status from the loaded snapshot
func (d *Doctor) ApprovalState() ApprovalState {
	return ResolveApprovalState(d)
}

// DoctorFilter is a domain-level filter for listing doctors.
type DoctorFilter struct {
	Search string         // ILIKE over name, email and license number
	State  *ApprovalState // nil means every state
	Sort   Sort
	Page   Page
}
