package usecase

//go:generate mockgen -source=access_gate.go -destination=mocks/access_gate_mock.go -package=mocks

import (
	"context"

	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/domain/repository"
	"truedoc-admin/internal/infrastructure/metrics"
	"truedoc-admin/internal/service"

	"github.com/sirupsen/logrus"
)

// AccessState is a step of one gate check: Unchecked, then Checking, then Authorized or Unauthorized.
type AccessState string

const (
	AccessUnchecked    AccessState = "unchecked"
	AccessChecking     AccessState = "checking"
	AccessAuthorized   AccessState = "authorized"
	AccessUnauthorized AccessState = "unauthorized"
)

// DenialReason explains an Unauthorized decision
type DenialReason string

const (
	DenialNoSession    DenialReason = "no_session"
	DenialNoRecord     DenialReason = "no_record"
	DenialNotModerator DenialReason = "not_moderator"
	DenialLookupFailed DenialReason = "lookup_failed"
)

// AccessDecision is the terminal outcome of a gate check.
// Session is set whenever one existed, even if it has since been signed out.
type AccessDecision struct {
	State   AccessState
	Reason  DenialReason
	Session *entity.Session
	Doctor  *entity.Doctor
}

// NewAccessDecision starts a decision for session in the Unchecked state.
func NewAccessDecision(session *entity.Session) *AccessDecision {
	return &AccessDecision{State: AccessUnchecked, Session: session}
}

func (d *AccessDecision) Authorized() bool {
	return d != nil && d.State == AccessAuthorized
}

// Settled reports whether the decision reached Authorized or Unauthorized.
func (d *AccessDecision) Settled() bool {
	return d != nil && (d.State == AccessAuthorized || d.State == AccessUnauthorized)
}

type decisionContextKey struct{}

// ContextWithAccessDecision stores the decision made for the current request
func ContextWithAccessDecision(ctx context.Context, decision *AccessDecision) context.Context {
	return context.WithValue(ctx, decisionContextKey{}, decision)
}

func AccessDecisionFromContext(ctx context.Context) (*AccessDecision, bool) {
	decision, ok := ctx.Value(decisionContextKey{}).(*AccessDecision)
	return decision, ok && decision != nil
}

// AccessGate decides whether a session belongs to a moderator. It holds no cached decision:
// every call consults the identity provider and the data store again.
type AccessGate interface {
	// Check resolves the session behind token and authorizes it.
	Check(ctx context.Context, token string) (*AccessDecision, error)
	// Authorize runs the moderator check for a session that is already known to exist.
	Authorize(ctx context.Context, session *entity.Session) (*AccessDecision, error)
}

type accessGate struct {
	log        *logrus.Logger
	identity   service.IdentityService
	doctorRepo repository.DoctorRepository
	metrics    *metrics.Metrics
}

func NewAccessGate(
	log *logrus.Logger,
	identity service.IdentityService,
	doctorRepo repository.DoctorRepository,
	appMetrics *metrics.Metrics,
) AccessGate {
	return &accessGate{
		log:        log,
		identity:   identity,
		doctorRepo: doctorRepo,
		metrics:    appMetrics,
	}
}

func (g *accessGate) Check(ctx context.Context, token string) (*AccessDecision, error) {
	decision := NewAccessDecision(nil)
	decision.State = AccessChecking

	session, err := g.identity.CurrentSession(ctx, token)
	if err != nil {
		g.log.Warnf("Failed to resolve current session: %+v", err)
		return g.deny(ctx, decision, DenialLookupFailed), lookupFailed(err)
	}
	if session == nil {
		return g.deny(ctx, decision, DenialNoSession), nil
	}

	decision.Session = session
	return g.authorize(ctx, decision)
}

func (g *accessGate) Authorize(ctx context.Context, session *entity.Session) (*AccessDecision, error) {
	decision := NewAccessDecision(session)
	if session == nil {
		return g.deny(ctx, decision, DenialNoSession), nil
	}
	return g.authorize(ctx, decision)
}

func (g *accessGate) authorize(ctx context.Context, decision *AccessDecision) (*AccessDecision, error) {
	decision.State = AccessChecking
	doctor, err := g.doctorRepo.FindByEmail(ctx, decision.Session.Email)
	if err != nil {
		g.log.Warnf("Failed to find moderator record: %+v", err)
		return g.deny(ctx, decision, DenialLookupFailed), lookupFailed(err)
	}
	if doctor == nil {
		return g.deny(ctx, decision, DenialNoRecord), nil
	}
	if !doctor.Moderator {
		return g.deny(ctx, decision, DenialNotModerator), nil
	}

	decision.State = AccessAuthorized
	decision.Doctor = doctor
	g.metrics.IncrementGateDecision(string(AccessAuthorized))
	return decision, nil
}

// deny terminates the session, if any, before reporting the denial.
// A failed sign-out is logged; the decision stays Unauthorized.
func (g *accessGate) deny(ctx context.Context, decision *AccessDecision, reason DenialReason) *AccessDecision {
	if decision.Session != nil {
		if err := g.identity.SignOut(ctx, decision.Session); err != nil {
			g.log.Warnf("Failed to sign out denied session: %+v", err)
		}
	}

	decision.State = AccessUnauthorized
	decision.Reason = reason
	g.metrics.IncrementGateDecision(string(reason))
	return decision
}
