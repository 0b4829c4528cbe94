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

// pendingChangesPredicate is the SQL form of the approved-with-pending-changes rule.
// It must stay equivalent to entity.ResolveApprovalState.
const pendingChangesPredicate = `medico.aprovado = true AND (
	COALESCE(medico.new_rqe, '') <> ''
	OR EXISTS (SELECT 1 FROM medico_especialidade_residencia c WHERE c.medico_id = medico.id AND c.aprovado = false)
	OR EXISTS (SELECT 1 FROM medico_subespecialidade_residencia c WHERE c.medico_id = medico.id AND c.aprovado = false)
	OR EXISTS (SELECT 1 FROM formacao_outros c WHERE c.medico_id = medico.id AND c.aprovado = false)
)`

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).
		Preload("University").
		Preload("Specialties.Specialty").
		Preload("Specialties.Institution").
		Preload("Subspecialties.Institution").
		Preload("OtherTrainings").
		Preload("InsurancePlans.InsurancePlan").
		Preload("Locations").
		Where("id = ?", id).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindSnapshot(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).
		Scopes(withClaims).
		Where("id = ?", id).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	var doctors []entity.Doctor
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Scopes(doctorFilter(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Scopes(doctorFilter(filter), withClaims, orderBy(filter.Sort, "created_at", true), paginate(filter.Page)).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}

	return doctors, total, nil
}

func (r *doctorRepository) CountByState(ctx context.Context, state entity.ApprovalState) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).
		Scopes(doctorFilter(&entity.DoctorFilter{State: &state})).
		Count(&total).Error
	return total, err
}

func (r *doctorRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Doctor{}).Where("id = ?", id).Update("aprovado", approved)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("no fields to update for doctor %s", id)
	}
	result := r.db.WithContext(ctx).Model(&entity.Doctor{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func withClaims(db *gorm.DB) *gorm.DB {
	return db.Preload("Specialties").Preload("Subspecialties").Preload("OtherTrainings")
}

func doctorFilter(filter *entity.DoctorFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Search != "" {
			like := "%" + filter.Search + "%"
			db = db.Where("medico.nome ILIKE ? OR medico.email ILIKE ? OR medico.crm ILIKE ?", like, like, like)
		}
		if filter.State != nil {
			switch *filter.State {
			case entity.ApprovalStatePending:
				db = db.Where("medico.aprovado = false")
			case entity.ApprovalStateApprovedWithPendingChanges:
				db = db.Where(pendingChangesPredicate)
			case entity.ApprovalStateApproved:
				db = db.Where("medico.aprovado = true AND NOT (" + pendingChangesPredicate + ")")
			}
		}
		return db
	}
}
