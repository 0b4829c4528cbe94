package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Location is an office address where a doctor attends
type Location struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID   uuid.UUID        `gorm:"column:medico_id;type:uuid;not null;index" json:"doctor_id"`
	Label      string           `gorm:"column:nome_endereco;type:varchar(255)" json:"label"`
	PostalCode string           `gorm:"column:cep;type:varchar(20)" json:"postal_code"`
	Street     string           `gorm:"column:logradouro;type:varchar(255)" json:"street"`
	Number     string           `gorm:"column:numero;type:varchar(20)" json:"number"`
	Complement *string          `gorm:"column:complemento;type:varchar(255)" json:"complement,omitempty"`
	District   string           `gorm:"column:bairro;type:varchar(255)" json:"district"`
	City       string           `gorm:"column:cidade;type:varchar(255)" json:"city"`
	State      string           `gorm:"column:estado;type:varchar(2)" json:"state"`
	Phone      string           `gorm:"column:telefone;type:varchar(50)" json:"phone"`
	Latitude   *decimal.Decimal `gorm:"type:decimal(10,7)" json:"latitude,omitempty"`
	Longitude  *decimal.Decimal `gorm:"type:decimal(10,7)" json:"longitude,omitempty"`
}

func (Location) TableName() string {
	return "localizacao"
}
