package repository

import (
	"context"
	"fmt"

	"truedoc-admin/internal/domain/entity"
	domainRepo "truedoc-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type claimRepository struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) domainRepo.ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) FindDoctorID(ctx context.Context, kind entity.ClaimKind, id uuid.UUID) (uuid.UUID, error) {
	table, err := claimTable(kind)
	if err != nil {
		return uuid.Nil, err
	}

	var doctorIDs []uuid.UUID
	err = r.db.WithContext(ctx).Table(table).Where("id = ?", id).Limit(1).Pluck("medico_id", &doctorIDs).Error
	if err != nil {
		return uuid.Nil, err
	}
	if len(doctorIDs) == 0 {
		return uuid.Nil, nil
	}
	return doctorIDs[0], nil
}

func (r *claimRepository) SetApproved(ctx context.Context, kind entity.ClaimKind, id uuid.UUID, approved bool) (int64, error) {
	table, err := claimTable(kind)
	if err != nil {
		return 0, err
	}
	result := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Update("aprovado", approved)
	return result.RowsAffected, result.Error
}

func (r *claimRepository) SetVisibility(ctx context.Context, kind entity.ClaimKind, id uuid.UUID, visible bool) (int64, error) {
	if !kind.SupportsVisibility() {
		return 0, fmt.Errorf("claim kind %q has no visibility flag", kind)
	}
	result := r.db.WithContext(ctx).Table(kind.TableName()).Where("id = ?", id).Update("show_profile", visible)
	return result.RowsAffected, result.Error
}

func (r *claimRepository) UpdateSpecialtyInstitution(ctx context.Context, id uuid.UUID, institutionID *uuid.UUID, institutionOther *string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.SpecialtyClaim{}).Where("id = ?", id).Updates(map[string]interface{}{
		"instituicao_residencia_id":    institutionID,
		"instituicao_residencia_outra": institutionOther,
	})
	return result.RowsAffected, result.Error
}

func claimTable(kind entity.ClaimKind) (string, error) {
	table := kind.TableName()
	if table == "" {
		return "", fmt.Errorf("unknown claim kind %q", kind)
	}
	return table, nil
}
