package repository

//go:generate mockgen -source=location_repository.go -destination=mocks/location_repository_mock.go -package=mocks

import (
	"context"

	"truedoc-admin/internal/domain/entity"

	"github.com/google/uuid"
)

type LocationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
}
