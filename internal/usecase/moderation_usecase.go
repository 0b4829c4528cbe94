package usecase

//go:generate mockgen -source=moderation_usecase.go -destination=mocks/moderation_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"truedoc-admin/internal/converter"
	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/domain/repository"
	"truedoc-admin/internal/infrastructure/metrics"
	"truedoc-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrClaimNotFound        = errors.New("claim not found")
	ErrUnsupportedClaimKind = errors.New("claim kind has no public profile visibility")
)

// Metric action labels
const (
	actionDoctorApproval        = "doctor_approval"
	actionClaimApproval         = "claim_approval"
	actionClaimVisibility       = "claim_visibility"
	actionInsurancePlansReplace = "insurance_plans_replace"
)

// ModerationUsecase applies moderator approval toggles. Every successful write is followed
// by a fresh read of the doctor and the state resolved from it is returned.
type ModerationUsecase interface {
	SetDoctorApproved(ctx context.Context, doctorID uuid.UUID, approved bool) (*dto.DoctorStatusResponse, error)
	SetClaimApproved(ctx context.Context, kind entity.ClaimKind, claimID uuid.UUID, approved bool) (*dto.DoctorStatusResponse, error)
	SetClaimVisibility(ctx context.Context, kind entity.ClaimKind, claimID uuid.UUID, visible bool) (*dto.DoctorStatusResponse, error)
	ReplaceDoctorInsurancePlans(ctx context.Context, doctorID uuid.UUID, planIDs []uuid.UUID) (*dto.DoctorStatusResponse, error)
}

type moderationUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	claimRepo    repository.ClaimRepository
	planLinkRepo repository.DoctorInsurancePlanRepository
	auditService service.AuditService
	metrics      *metrics.Metrics
}

func NewModerationUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	claimRepo repository.ClaimRepository,
	planLinkRepo repository.DoctorInsurancePlanRepository,
	auditService service.AuditService,
	appMetrics *metrics.Metrics,
) ModerationUsecase {
	return &moderationUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		claimRepo:    claimRepo,
		planLinkRepo: planLinkRepo,
		auditService: auditService,
		metrics:      appMetrics,
	}
}

func (u *moderationUsecase) SetDoctorApproved(ctx context.Context, doctorID uuid.UUID, approved bool) (*dto.DoctorStatusResponse, error) {
	start := time.Now()

	rows, err := u.doctorRepo.SetApproved(ctx, doctorID, approved)
	if err != nil {
		u.log.Warnf("Failed to set doctor approval: %+v", err)
		u.metrics.ObserveModeration(actionDoctorApproval, metrics.OutcomeFailure, start)
		return nil, &WriteFailedError{Kind: WriteDoctorApproval, ID: doctorID, Err: err}
	}
	if rows == 0 {
		u.metrics.ObserveModeration(actionDoctorApproval, metrics.OutcomeFailure, start)
		return nil, ErrDoctorNotFound
	}

	u.audit(ctx, entity.AuditActionDoctorApproval, "doctor", doctorID, map[string]interface{}{"approved": approved})
	u.metrics.ObserveModeration(actionDoctorApproval, metrics.OutcomeSuccess, start)

	return u.resolve(ctx, doctorID)
}

func (u *moderationUsecase) SetClaimApproved(ctx context.Context, kind entity.ClaimKind, claimID uuid.UUID, approved bool) (*dto.DoctorStatusResponse, error) {
	start := time.Now()

	doctorID, err := u.claimOwner(ctx, kind, claimID)
	if err != nil {
		u.metrics.ObserveModeration(actionClaimApproval, metrics.OutcomeFailure, start)
		return nil, err
	}

	rows, err := u.claimRepo.SetApproved(ctx, kind, claimID, approved)
	if err != nil {
		u.log.Warnf("Failed to set %s claim approval: %+v", kind, err)
		u.metrics.ObserveModeration(actionClaimApproval, metrics.OutcomeFailure, start)
		return nil, &WriteFailedError{Kind: WriteClaimApproval, ID: claimID, Err: err}
	}
	if rows == 0 {
		u.metrics.ObserveModeration(actionClaimApproval, metrics.OutcomeFailure, start)
		return nil, ErrClaimNotFound
	}

	u.audit(ctx, entity.AuditActionClaimApproval, string(kind), claimID, map[string]interface{}{
		"doctor_id": doctorID,
		"approved":  approved,
	})
	u.metrics.ObserveModeration(actionClaimApproval, metrics.OutcomeSuccess, start)

	return u.resolve(ctx, doctorID)
}

func (u *moderationUsecase) SetClaimVisibility(ctx context.Context, kind entity.ClaimKind, claimID uuid.UUID, visible bool) (*dto.DoctorStatusResponse, error) {
	if !kind.SupportsVisibility() {
		return nil, ErrUnsupportedClaimKind
	}
	start := time.Now()

	doctorID, err := u.claimOwner(ctx, kind, claimID)
	if err != nil {
		u.metrics.ObserveModeration(actionClaimVisibility, metrics.OutcomeFailure, start)
		return nil, err
	}

	rows, err := u.claimRepo.SetVisibility(ctx, kind, claimID, visible)
	if err != nil {
		u.log.Warnf("Failed to set %s claim visibility: %+v", kind, err)
		u.metrics.ObserveModeration(actionClaimVisibility, metrics.OutcomeFailure, start)
		return nil, &WriteFailedError{Kind: WriteClaimVisibility, ID: claimID, Err: err}
	}
	if rows == 0 {
		u.metrics.ObserveModeration(actionClaimVisibility, metrics.OutcomeFailure, start)
		return nil, ErrClaimNotFound
	}

	u.audit(ctx, entity.AuditActionClaimVisibility, string(kind), claimID, map[string]interface{}{
		"doctor_id": doctorID,
		"visible":   visible,
	})
	u.metrics.ObserveModeration(actionClaimVisibility, metrics.OutcomeSuccess, start)

	return u.resolve(ctx, doctorID)
}

// ReplaceDoctorInsurancePlans deletes every plan link of the doctor, then inserts the selection.
// The two writes are sequential and not atomic: a failed insert leaves the doctor with no plans
// and is reported as ErrPlansPartiallyReplaced.
func (u *moderationUsecase) ReplaceDoctorInsurancePlans(ctx context.Context, doctorID uuid.UUID, planIDs []uuid.UUID) (*dto.DoctorStatusResponse, error) {
	start := time.Now()

	doctor, err := u.doctorRepo.FindSnapshot(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		u.metrics.ObserveModeration(actionInsurancePlansReplace, metrics.OutcomeFailure, start)
		return nil, lookupFailed(err)
	}
	if doctor == nil {
		u.metrics.ObserveModeration(actionInsurancePlansReplace, metrics.OutcomeFailure, start)
		return nil, ErrDoctorNotFound
	}

	selected := uniqueIDs(planIDs)

	if err := u.planLinkRepo.DeleteByDoctorID(ctx, doctorID); err != nil {
		u.log.Warnf("Failed to delete insurance plan links: %+v", err)
		u.metrics.ObserveModeration(actionInsurancePlansReplace, metrics.OutcomeFailure, start)
		return nil, &WriteFailedError{Kind: WriteInsurancePlansDelete, ID: doctorID, Err: err}
	}

	if len(selected) > 0 {
		links := make([]entity.DoctorInsurancePlan, len(selected))
		for i, planID := range selected {
			links[i] = entity.DoctorInsurancePlan{DoctorID: doctorID, InsurancePlanID: planID}
		}

		if err := u.planLinkRepo.CreateBatch(ctx, links); err != nil {
			u.log.Errorf("Insurance plans of doctor %s were removed but the new selection could not be saved: %+v", doctorID, err)
			u.metrics.ObserveModeration(actionInsurancePlansReplace, metrics.OutcomePartial, start)
			return nil, &WriteFailedError{Kind: WriteInsurancePlansInsert, ID: doctorID, Err: err}
		}
	}

	u.audit(ctx, entity.AuditActionInsurancePlansReplace, "doctor", doctorID, map[string]interface{}{
		"insurance_plan_ids": selected,
	})
	u.metrics.ObserveModeration(actionInsurancePlansReplace, metrics.OutcomeSuccess, start)

	return u.resolve(ctx, doctorID)
}

func (u *moderationUsecase) claimOwner(ctx context.Context, kind entity.ClaimKind, claimID uuid.UUID) (uuid.UUID, error) {
	doctorID, err := u.claimRepo.FindDoctorID(ctx, kind, claimID)
	if err != nil {
		u.log.Warnf("Failed to find %s claim: %+v", kind, err)
		return uuid.Nil, lookupFailed(err)
	}
	if doctorID == uuid.Nil {
		return uuid.Nil, ErrClaimNotFound
	}
	return doctorID, nil
}

// resolve re-reads the doctor after a write. A failed read does not undo the write.
func (u *moderationUsecase) resolve(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorStatusResponse, error) {
	doctor, err := u.doctorRepo.FindSnapshot(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to re-read doctor after write: %+v", err)
		return nil, lookupFailed(err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToStatusResponse(doctor), nil
}

func (u *moderationUsecase) audit(ctx context.Context, action, entityName string, id uuid.UUID, newValue interface{}) {
	if err := u.auditService.LogUpdate(ctx, action, entityName, id.String(), nil, newValue); err != nil {
		u.log.Warnf("Failed to audit %s: %+v", action, err)
	}
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
