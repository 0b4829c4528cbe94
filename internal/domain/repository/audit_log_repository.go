package repository

//go:generate mockgen -source=audit_log_repository.go -destination=mocks/audit_log_repository_mock.go -package=mocks

import (
	"context"

	"truedoc-admin/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, page entity.Page) ([]entity.AuditLog, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.AuditLog, error)
}
