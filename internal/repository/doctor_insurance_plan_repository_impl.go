package repository

import (
	"context"

	"truedoc-admin/internal/domain/entity"
	domainRepo "truedoc-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorInsurancePlanRepository struct {
	db *gorm.DB
}

func NewDoctorInsurancePlanRepository(db *gorm.DB) domainRepo.DoctorInsurancePlanRepository {
	return &doctorInsurancePlanRepository{db: db}
}

func (r *doctorInsurancePlanRepository) DeleteByDoctorID(ctx context.Context, doctorID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("medico_id = ?", doctorID).Delete(&entity.DoctorInsurancePlan{}).Error
}

func (r *doctorInsurancePlanRepository) CreateBatch(ctx context.Context, links []entity.DoctorInsurancePlan) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&links).Error
}
