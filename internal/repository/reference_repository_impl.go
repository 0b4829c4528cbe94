package repository

import (
	"context"
	"errors"
	"fmt"

	"truedoc-admin/internal/domain/entity"
	domainRepo "truedoc-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) domainRepo.ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) table(ctx context.Context, kind entity.ReferenceKind) (*gorm.DB, error) {
	name := kind.TableName()
	if name == "" {
		return nil, fmt.Errorf("unknown reference kind %q", kind)
	}
	return r.db.WithContext(ctx).Table(name), nil
}

func (r *referenceRepository) FindAll(ctx context.Context, kind entity.ReferenceKind, filter *entity.ReferenceFilter) ([]entity.NamedReference, int64, error) {
	countQuery, err := r.table(ctx, kind)
	if err != nil {
		return nil, 0, err
	}
	search := func(db *gorm.DB) *gorm.DB {
		if filter.Search != "" {
			return db.Where("nome ILIKE ?", "%"+filter.Search+"%")
		}
		return db
	}

	var total int64
	if err := countQuery.Scopes(search).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery, _ := r.table(ctx, kind)
	var refs []entity.NamedReference
	err = listQuery.
		Scopes(search, orderBy(filter.Sort, "nome", false), paginate(filter.Page)).
		Find(&refs).Error
	if err != nil {
		return nil, 0, err
	}

	return refs, total, nil
}

func (r *referenceRepository) FindByID(ctx context.Context, kind entity.ReferenceKind, id uuid.UUID) (*entity.NamedReference, error) {
	query, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	var ref entity.NamedReference
	if err := query.Where("id = ?", id).First(&ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ref, nil
}

func (r *referenceRepository) ExistsByName(ctx context.Context, kind entity.ReferenceKind, name string) (bool, error) {
	query, err := r.table(ctx, kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := query.Where("LOWER(nome) = LOWER(?)", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *referenceRepository) Create(ctx context.Context, kind entity.ReferenceKind, ref *entity.NamedReference) error {
	query, err := r.table(ctx, kind)
	if err != nil {
		return err
	}
	return query.Create(ref).Error
}

func (r *referenceRepository) Update(ctx context.Context, kind entity.ReferenceKind, ref *entity.NamedReference) (int64, error) {
	query, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}
	result := query.Where("id = ?", ref.ID).Update("nome", ref.Name)
	return result.RowsAffected, result.Error
}

func (r *referenceRepository) Delete(ctx context.Context, kind entity.ReferenceKind, id uuid.UUID) (int64, error) {
	query, err := r.table(ctx, kind)
	if err != nil {
		return 0, err
	}
	result := query.Where("id = ?", id).Delete(&entity.NamedReference{})
	return result.RowsAffected, result.Error
}

type specialtyRepository struct {
	db *gorm.DB
}

func NewSpecialtyRepository(db *gorm.DB) domainRepo.SpecialtyRepository {
	return &specialtyRepository{db: db}
}

func (r *specialtyRepository) FindAll(ctx context.Context) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	if err := r.db.WithContext(ctx).Order("nome ASC").Find(&specialties).Error; err != nil {
		return nil, err
	}
	return specialties, nil
}
