package repository

//go:generate mockgen -source=doctor_insurance_plan_repository.go -destination=mocks/doctor_insurance_plan_repository_mock.go -package=mocks

import (
	"context"

	"truedoc-admin/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorInsurancePlanRepository interface {
	DeleteByDoctorID(ctx context.Context, doctorID uuid.UUID) error
	CreateBatch(ctx context.Context, links []entity.DoctorInsurancePlan) error
}
