package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// ClaimKind identifies one of the three credential collections attached to a doctor
type ClaimKind string

const (
	ClaimKindSpecialty     ClaimKind = "specialty"
	ClaimKindSubspecialty  ClaimKind = "subspecialty"
	ClaimKindOtherTraining ClaimKind = "other_training"
)

// ParseClaimKind converts a path segment into a ClaimKind
func ParseClaimKind(s string) (ClaimKind, error) {
	switch k := ClaimKind(s); k {
	case ClaimKindSpecialty, ClaimKindSubspecialty, ClaimKindOtherTraining:
		return k, nil
	}
	return "", fmt.Errorf("unknown claim kind %q", s)
}

// SupportsVisibility reports whether claims of this kind carry a show-on-profile flag.
// Subspecialty claims have none.
func (k ClaimKind) SupportsVisibility() bool {
	return k == ClaimKindSpecialty || k == ClaimKindOtherTraining
}

// TableName returns the table backing claims of this kind
func (k ClaimKind) TableName() string {
	switch k {
	case ClaimKindSpecialty:
		return SpecialtyClaim{}.TableName()
	case ClaimKindSubspecialty:
		return SubspecialtyClaim{}.TableName()
	case ClaimKindOtherTraining:
		return OtherTrainingClaim{}.TableName()
	}
	return ""
}

// SpecialtyClaim is a residency specialty declared by a doctor
type SpecialtyClaim struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID            uuid.UUID  `gorm:"column:medico_id;type:uuid;not null;index" json:"doctor_id"`
	SpecialtyID         uuid.UUID  `gorm:"column:especialidade_id;type:uuid;not null" json:"specialty_id"`
	InstitutionID       *uuid.UUID `gorm:"column:instituicao_residencia_id;type:uuid" json:"institution_id,omitempty"`
	InstitutionOther    *string    `gorm:"column:instituicao_residencia_outra;type:varchar(255)" json:"institution_other,omitempty"`
	ShowOnPublicProfile bool       `gorm:"column:show_profile;not null;default:false" json:"show_on_public_profile"`
	Approved            bool       `gorm:"column:aprovado;not null;default:false" json:"approved"`

	// Relationships
	Specialty   *Specialty   `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Institution *Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
}

func (SpecialtyClaim) TableName() string {
	return "medico_especialidade_residencia"
}

// SubspecialtyClaim is a subspecialty declared by a doctor, named in free text
type SubspecialtyClaim struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID         uuid.UUID  `gorm:"column:medico_id;type:uuid;not null;index" json:"doctor_id"`
	Name             string     `gorm:"column:subespecialidade_nome;type:varchar(255);not null" json:"name"`
	InstitutionID    *uuid.UUID `gorm:"column:instituicao_residencia_id;type:uuid" json:"institution_id,omitempty"`
	InstitutionOther *string    `gorm:"column:instituicao_residencia_outra;type:varchar(255)" json:"institution_other,omitempty"`
	Approved         bool       `gorm:"column:aprovado;not null;default:false" json:"approved"`

	// Relationships
	Institution *Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
}

func (SubspecialtyClaim) TableName() string {
	return "medico_subespecialidade_residencia"
}

// OtherTrainingClaim is any other course or training a doctor wants listed
type OtherTrainingClaim struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID            uuid.UUID `gorm:"column:medico_id;type:uuid;not null;index" json:"doctor_id"`
	Name                string    `gorm:"column:nome;type:varchar(255);not null" json:"name"`
	Institution         *string   `gorm:"column:instituicao;type:varchar(255)" json:"institution,omitempty"`
	ShowOnPublicProfile bool      `gorm:"column:show_profile;not null;default:false" json:"show_on_public_profile"`
	Approved            bool      `gorm:"column:aprovado;not null;default:false" json:"approved"`
}

func (OtherTrainingClaim) TableName() string {
	return "formacao_outros"
}
