package repository

import (
	"context"
	"errors"

	"truedoc-admin/internal/domain/entity"
	domainRepo "truedoc-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lead).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) FindAll(ctx context.Context, filter *entity.LeadFilter) ([]entity.Lead, int64, error) {
	var leads []entity.Lead
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Lead{}).Scopes(leadFilter(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Scopes(leadFilter(filter), orderBy(filter.Sort, "created_at", true), paginate(filter.Page)).
		Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

func (r *leadRepository) FindSources(ctx context.Context) ([]string, error) {
	var sources []string
	err := r.db.WithContext(ctx).Model(&entity.Lead{}).
		Distinct("source").
		Where("source IS NOT NULL AND source <> ''").
		Order("source ASC").
		Pluck("source", &sources).Error
	if err != nil {
		return nil, err
	}
	return sources, nil
}

func (r *leadRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Lead{}).Count(&total).Error
	return total, err
}

func (r *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *leadRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Lead{})
	return result.RowsAffected, result.Error
}

func leadFilter(filter *entity.LeadFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Search != "" {
			like := "%" + filter.Search + "%"
			db = db.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.Source != "" {
			db = db.Where("source = ?", filter.Source)
		}
		if filter.StartDate != "" {
			db = db.Where("created_at >= ?::date", filter.StartDate)
		}
		if filter.EndDate != "" {
			db = db.Where("created_at < ?::date + INTERVAL '1 day'", filter.EndDate)
		}
		return db
	}
}
