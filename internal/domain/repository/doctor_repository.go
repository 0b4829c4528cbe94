package repository

//go:generate mockgen -source=doctor_repository.go -destination=mocks/doctor_repository_mock.go -package=mocks

import (
	"context"

	"truedoc-admin/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	// FindByID loads the doctor with every nested collection. Returns nil, nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	// FindSnapshot loads the doctor with its three claim collections only.
	FindSnapshot(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*entity.Doctor, error)
	FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error)
	CountByState(ctx context.Context, state entity.ApprovalState) (int64, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) (int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
}
