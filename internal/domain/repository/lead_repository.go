package repository

//go:generate mockgen -source=lead_repository.go -destination=mocks/lead_repository_mock.go -package=mocks

import (
	"context"

	"truedoc-admin/internal/domain/entity"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id int64) (*entity.Lead, error)
	FindAll(ctx context.Context, filter *entity.LeadFilter) ([]entity.Lead, int64, error)
	FindSources(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id int64) (int64, error)
}
