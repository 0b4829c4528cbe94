package usecase

//go:generate mockgen -source=auth_usecase.go -destination=mocks/auth_usecase_mock.go -package=mocks

import (
	"context"
	"errors"

	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotModerator = errors.New("account is not a moderator")
	ErrNoSession    = errors.New("no active session")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*dto.ModeratorResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	identity     service.IdentityService
	gate         AccessGate
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	identity service.IdentityService,
	gate AccessGate,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		identity:     identity,
		gate:         gate,
		auditService: auditService,
	}
}

// Login signs in and immediately runs the access gate on the new session.
// A non-moderator's session is already terminated when ErrNotModerator is returned.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	session, err := u.identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, err
		}
		u.log.Warnf("Failed to sign in: %+v", err)
		return nil, lookupFailed(err)
	}

	decision, err := u.gate.Authorize(ctx, session)
	if err != nil {
		return nil, err
	}
	if !decision.Authorized() {
		return nil, ErrNotModerator
	}

	ctx = entity.ContextWithSession(ctx, session)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionModeratorLogin, "session", session.ID, map[string]interface{}{
		"email": session.Email,
	}); err != nil {
		u.log.Warnf("Failed to audit login: %+v", err)
	}

	return &dto.TokenResponse{
		AccessToken: session.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(session.ExpiresAt.Sub(nowFunc()).Seconds()),
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	session, ok := entity.SessionFromContext(ctx)
	if !ok {
		return ErrNoSession
	}

	if err := u.identity.SignOut(ctx, session); err != nil {
		u.log.Warnf("Failed to sign out: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditActionModeratorLogout, "session", session.ID, nil); err != nil {
		u.log.Warnf("Failed to audit logout: %+v", err)
	}
	return nil
}

// Me reports the moderator behind the current session. It reuses the decision the gate
// made for this request and only runs the gate itself when there is none or it never settled.
func (u *authUsecase) Me(ctx context.Context) (*dto.ModeratorResponse, error) {
	session, ok := entity.SessionFromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	decision, ok := AccessDecisionFromContext(ctx)
	if !ok || !decision.Settled() {
		var err error
		if decision, err = u.gate.Authorize(ctx, session); err != nil {
			return nil, err
		}
	}
	if !decision.Authorized() {
		return nil, ErrNotModerator
	}

	return &dto.ModeratorResponse{
		AccountID: session.AccountID,
		DoctorID:  decision.Doctor.ID,
		Email:     session.Email,
		Name:      decision.Doctor.Name,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
