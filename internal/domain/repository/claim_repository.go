package repository

//go:generate mockgen -source=claim_repository.go -destination=mocks/claim_repository_mock.go -package=mocks

import (
	"context"

	"truedoc-admin/internal/domain/entity"

	"github.com/google/uuid"
)

type ClaimRepository interface {
	// FindDoctorID returns the owning doctor of a claim, or uuid.Nil when the claim does not exist.
	FindDoctorID(ctx context.Context, kind entity.ClaimKind, id uuid.UUID) (uuid.UUID, error)
	SetApproved(ctx context.Context, kind entity.ClaimKind, id uuid.UUID, approved bool) (int64, error)
	SetVisibility(ctx context.Context, kind entity.ClaimKind, id uuid.UUID, visible bool) (int64, error)
	UpdateSpecialtyInstitution(ctx context.Context, id uuid.UUID, institutionID *uuid.UUID, institutionOther *string) (int64, error)
}
