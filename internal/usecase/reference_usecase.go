package usecase

//go:generate mockgen -source=reference_usecase.go -destination=mocks/reference_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"truedoc-admin/internal/converter"
	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/domain/repository"
	"truedoc-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrReferenceNotFound = errors.New("reference not found")
	ErrReferenceExists   = errors.New("reference with this name already exists")
	ErrReferenceInUse    = errors.New("reference is still in use")
	ErrInstitutionExists = errors.New("institution already exists")
)

// ReferenceUsecase maintains the name-only reference tables: insurance plans,
// universities and residency institutions. Specialties are read only.
type ReferenceUsecase interface {
	List(ctx context.Context, kind entity.ReferenceKind, query *dto.ReferenceListQuery) ([]dto.ReferenceResponse, *dto.PageInfo, error)
	Create(ctx context.Context, kind entity.ReferenceKind, req *dto.ReferenceRequest) (*dto.ReferenceResponse, error)
	Update(ctx context.Context, kind entity.ReferenceKind, id uuid.UUID, req *dto.ReferenceRequest) (*dto.ReferenceResponse, error)
	Delete(ctx context.Context, kind entity.ReferenceKind, id uuid.UUID) error
	ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error)
}

type referenceUsecase struct {
	log           *logrus.Logger
	referenceRepo repository.ReferenceRepository
	specialtyRepo repository.SpecialtyRepository
	auditService  service.AuditService
	paginator     Paginator
}

func NewReferenceUsecase(
	log *logrus.Logger,
	referenceRepo repository.ReferenceRepository,
	specialtyRepo repository.SpecialtyRepository,
	auditService service.AuditService,
	paginator Paginator,
) ReferenceUsecase {
	return &referenceUsecase{
		log:           log,
		referenceRepo: referenceRepo,
		specialtyRepo: specialtyRepo,
		auditService:  auditService,
		paginator:     paginator,
	}
}

func (u *referenceUsecase) List(ctx context.Context, kind entity.ReferenceKind, query *dto.ReferenceListQuery) ([]dto.ReferenceResponse, *dto.PageInfo, error) {
	filter := &entity.ReferenceFilter{
		Search: strings.TrimSpace(query.Search),
		Sort:   sortOrder("nome", query.Order),
		Page:   u.paginator.Page(query.Page, query.Limit),
	}

	refs, total, err := u.referenceRepo.FindAll(ctx, kind, filter)
	if err != nil {
		u.log.Warnf("Failed to find %s references: %+v", kind, err)
		return nil, nil, lookupFailed(err)
	}

	return converter.ReferencesToResponses(refs), pageInfo(filter.Page, total), nil
}

func (u *referenceUsecase) Create(ctx context.Context, kind entity.ReferenceKind, req *dto.ReferenceRequest) (*dto.ReferenceResponse, error) {
	name := strings.TrimSpace(req.Name)

	// Institutions are typed in by doctors, so duplicates differing only in case are common
	if kind == entity.ReferenceKindInstitution {
		exists, err := u.referenceRepo.ExistsByName(ctx, kind, name)
		if err != nil {
			u.log.Warnf("Failed to check institution name: %+v", err)
			return nil, lookupFailed(err)
		}
		if exists {
			return nil, ErrInstitutionExists
		}
	}

	ref := &entity.NamedReference{ID: uuid.New(), Name: name}
	if err := u.referenceRepo.Create(ctx, kind, ref); err != nil {
		if isDuplicateKeyError(err, "nome") {
			return nil, ErrReferenceExists
		}
		u.log.Warnf("Failed to create %s reference: %+v", kind, err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, entity.AuditActionReferenceCreate, string(kind), ref.ID.String(), ref); err != nil {
		u.log.Warnf("Failed to audit reference create: %+v", err)
	}

	return converter.ReferenceToResponse(ref), nil
}

func (u *referenceUsecase) Update(ctx context.Context, kind entity.ReferenceKind, id uuid.UUID, req *dto.ReferenceRequest) (*dto.ReferenceResponse, error) {
	old, err := u.referenceRepo.FindByID(ctx, kind, id)
	if err != nil {
		u.log.Warnf("Failed to find %s reference: %+v", kind, err)
		return nil, lookupFailed(err)
	}
	if old == nil {
		return nil, ErrReferenceNotFound
	}

	ref := &entity.NamedReference{ID: id, Name: strings.TrimSpace(req.Name)}
	rows, err := u.referenceRepo.Update(ctx, kind, ref)
	if err != nil {
		if isDuplicateKeyError(err, "nome") {
			return nil, ErrReferenceExists
		}
		u.log.Warnf("Failed to update %s reference: %+v", kind, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrReferenceNotFound
	}

	if err := u.auditService.LogUpdate(ctx, entity.AuditActionReferenceUpdate, string(kind), id.String(), old, ref); err != nil {
		u.log.Warnf("Failed to audit reference update: %+v", err)
	}

	return converter.ReferenceToResponse(ref), nil
}

func (u *referenceUsecase) Delete(ctx context.Context, kind entity.ReferenceKind, id uuid.UUID) error {
	rows, err := u.referenceRepo.Delete(ctx, kind, id)
	if err != nil {
		if isForeignKeyError(err, "") {
			return ErrReferenceInUse
		}
		u.log.Warnf("Failed to delete %s reference: %+v", kind, err)
		return err
	}
	if rows == 0 {
		return ErrReferenceNotFound
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditActionReferenceDelete, string(kind), id.String(), nil); err != nil {
		u.log.Warnf("Failed to audit reference delete: %+v", err)
	}
	return nil
}

func (u *referenceUsecase) ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, lookupFailed(err)
	}
	return converter.SpecialtiesToResponses(specialties), nil
}
