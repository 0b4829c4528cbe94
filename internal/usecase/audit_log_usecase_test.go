package usecase_test

import (
	"context"
	"testing"
	"time"

	"truedoc-admin/internal/domain/entity"
	repomocks "truedoc-admin/internal/domain/repository/mocks"
	"truedoc-admin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditLogUsecase_GetAllAuditLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockAuditLogRepository(ctrl)
	uc := usecase.NewAuditLogUsecase(newTestLogger(), repo, testPaginator())

	logs := []entity.AuditLog{
		{ID: 2, Action: entity.AuditActionClaimApproval, ActorEmail: "mod@truedoc.example", CreatedAt: time.Now()},
		{ID: 1, Action: entity.AuditActionModeratorLogin, CreatedAt: time.Now()},
	}
	repo.EXPECT().FindAll(gomock.Any(), entity.Page{Number: 1, Size: 10}).Return(logs, int64(2), nil)

	result, info, err := uc.GetAllAuditLogs(context.Background(), 0, 0)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(2), result[0].ID)
	assert.Equal(t, entity.AuditActionClaimApproval, result[0].Action)
	assert.Equal(t, int64(2), info.Total)
	assert.Equal(t, 10, info.Limit)
}

func TestAuditLogUsecase_GetAuditLogNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockAuditLogRepository(ctrl)
	uc := usecase.NewAuditLogUsecase(newTestLogger(), repo, testPaginator())

	repo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, nil)

	result, err := uc.GetAuditLog(context.Background(), 99)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrAuditLogNotFound)
}
