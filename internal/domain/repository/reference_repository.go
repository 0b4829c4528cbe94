package repository

//go:generate mockgen -source=reference_repository.go -destination=mocks/reference_repository_mock.go -package=mocks

import (
	"context"

	"truedoc-admin/internal/domain/entity"

	"github.com/google/uuid"
)

type ReferenceRepository interface {
	FindAll(ctx context.Context, kind entity.ReferenceKind, filter *entity.ReferenceFilter) ([]entity.NamedReference, int64, error)
	FindByID(ctx context.Context, kind entity.ReferenceKind, id uuid.UUID) (*entity.NamedReference, error)
	ExistsByName(ctx context.Context, kind entity.ReferenceKind, name string) (bool, error)
	Create(ctx context.Context, kind entity.ReferenceKind, ref *entity.NamedReference) error
	Update(ctx context.Context, kind entity.ReferenceKind, ref *entity.NamedReference) (int64, error)
	Delete(ctx context.Context, kind entity.ReferenceKind, id uuid.UUID) (int64, error)
}

type SpecialtyRepository interface {
	FindAll(ctx context.Context) ([]entity.Specialty, error)
}
