package usecase

//go:generate mockgen -source=dashboard_usecase.go -destination=mocks/dashboard_usecase_mock.go -package=mocks

import (
	"context"

	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type DashboardUsecase interface {
	Overview(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	leadRepo   repository.LeadRepository
}

func NewDashboardUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository, leadRepo repository.LeadRepository) DashboardUsecase {
	return &dashboardUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		leadRepo:   leadRepo,
	}
}

// Overview runs the four counts concurrently and fails as a whole when any of them fails
func (u *dashboardUsecase) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	var result dto.DashboardResponse
	var cleanDoctors int64
	g, gctx := errgroup.WithContext(ctx)

	count := func(state entity.ApprovalState, dst *int64) {
		g.Go(func() error {
			n, err := u.doctorRepo.CountByState(gctx, state)
			if err != nil {
				u.log.Warnf("Failed to count %s doctors: %+v", state, err)
				return err
			}
			*dst = n
			return nil
		})
	}
	count(entity.ApprovalStatePending, &result.PendingDoctors)
	count(entity.ApprovalStateApproved, &cleanDoctors)
	count(entity.ApprovalStateApprovedWithPendingChanges, &result.PendingChangesDoctors)

	g.Go(func() error {
		n, err := u.leadRepo.Count(gctx)
		if err != nil {
			u.log.Warnf("Failed to count leads: %+v", err)
			return err
		}
		result.TotalLeads = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, lookupFailed(err)
	}
	// Approved and approved-with-pending-changes partition the aprovado = true rows
	result.ApprovedDoctors = cleanDoctors + result.PendingChangesDoctors
	return &result, nil
}
