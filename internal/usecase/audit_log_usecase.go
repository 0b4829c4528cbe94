package usecase

//go:generate mockgen -source=audit_log_usecase.go -destination=mocks/audit_log_usecase_mock.go -package=mocks

import (
	"context"
	"errors"

	"truedoc-admin/internal/converter"
	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, *dto.PageInfo, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
	paginator    Paginator
}

func NewAuditLogUsecase(
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
	paginator Paginator,
) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
		paginator:    paginator,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, *dto.PageInfo, error) {
	p := u.paginator.Page(page, limit)

	logs, total, err := u.auditLogRepo.FindAll(ctx, p)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, nil, lookupFailed(err)
	}

	return converter.AuditLogsToResponses(logs), pageInfo(p, total), nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, lookupFailed(err)
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
