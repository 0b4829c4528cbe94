package entity

import "github.com/google/uuid"

// ReferenceKind identifies one of the name-only reference tables moderators maintain
type ReferenceKind string

const (
	ReferenceKindInsurancePlan ReferenceKind = "insurance_plan"
	ReferenceKindUniversity    ReferenceKind = "university"
	ReferenceKindInstitution   ReferenceKind = "institution"
)

// TableName returns the table backing references of this kind
func (k ReferenceKind) TableName() string {
	switch k {
	case ReferenceKindInsurancePlan:
		return InsurancePlan{}.TableName()
	case ReferenceKindUniversity:
		return University{}.TableName()
	case ReferenceKindInstitution:
		return Institution{}.TableName()
	}
	return ""
}

// NamedReference is the shared shape of every reference table row
type NamedReference struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:nome" json:"name"`
}

// ReferenceFilter is a domain-level filter for listing reference rows.
type ReferenceFilter struct {
	Search string // ILIKE over name
	Sort   Sort
	Page   Page
}

// InsurancePlan is a health insurance plan a doctor may accept
type InsurancePlan struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"column:nome;type:varchar(255);not null;uniqueIndex" json:"name"`
}

func (InsurancePlan) TableName() string {
	return "convenio"
}

// University is a medical school a doctor graduated from
type University struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"column:nome;type:varchar(255);not null;uniqueIndex" json:"name"`
}

func (University) TableName() string {
	return "faculdade"
}

// Institution is a residency institution referenced by specialty claims
type Institution struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"column:nome;type:varchar(255);not null" json:"name"`
}

func (Institution) TableName() string {
	return "instituicao_residencia"
}

// Specialty types
const (
	SpecialtyTypeD = "D"
	SpecialtyTypeE = "E"
)

// Specialty is a medical specialty from the national list
type Specialty struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"column:nome;type:varchar(255);not null" json:"name"`
	Type string    `gorm:"column:tipo;type:char(1);not null" json:"type"`
}

func (Specialty) TableName() string {
	return "especialidade"
}

// DoctorInsurancePlan links a doctor to an accepted insurance plan
type DoctorInsurancePlan struct {
	DoctorID        uuid.UUID `gorm:"column:medico_id;type:uuid;primaryKey" json:"doctor_id"`
	InsurancePlanID uuid.UUID `gorm:"column:convenio_id;type:uuid;primaryKey" json:"insurance_plan_id"`

	// Relationships
	InsurancePlan *InsurancePlan `gorm:"foreignKey:InsurancePlanID" json:"insurance_plan,omitempty"`
}

func (DoctorInsurancePlan) TableName() string {
	return "medico_convenios"
}
