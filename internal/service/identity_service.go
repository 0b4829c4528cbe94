package service

//go:generate mockgen -source=identity_service.go -destination=mocks/identity_service_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/domain/repository"
	"truedoc-admin/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("account already exists")
)

// IdentityService issues, resolves and terminates authenticated sessions.
type IdentityService interface {
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
	// CurrentSession returns nil, nil when the token does not name a live session.
	CurrentSession(ctx context.Context, token string) (*entity.Session, error)
	SignOut(ctx context.Context, session *entity.Session) error
	CreateAccount(ctx context.Context, email, password string) (*entity.Account, error)
}

type identityService struct {
	log         *logrus.Logger
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	jwtService  *jwt.JWTService
}

func NewIdentityService(
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
) IdentityService {
	return &identityService{
		log:         log,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

func (s *identityService) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.TrimSpace(email)

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, sessionID, expiresAt, err := s.jwtService.GenerateSessionToken(account.ID, account.Email)
	if err != nil {
		s.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	session := &entity.Session{
		ID:        sessionID,
		AccountID: account.ID,
		Email:     account.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}

	if err := s.sessionRepo.Save(ctx, session, s.jwtService.GetAccessExpiry()); err != nil {
		s.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	return session, nil
}

func (s *identityService) CurrentSession(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	stored, err := s.sessionRepo.Find(ctx, claims.SessionID)
	if err != nil {
		s.log.Warnf("Failed to load session: %+v", err)
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}
	// The stored record must belong to the identity the token claims.
	if stored.AccountID != claims.AccountID || stored.Email != claims.Email {
		s.log.Warnf("Session %s does not match its token claims", claims.SessionID)
		return nil, nil
	}

	session := &entity.Session{
		ID:        claims.SessionID,
		AccountID: stored.AccountID,
		Email:     stored.Email,
		Token:     token,
		ExpiresAt: stored.ExpiresAt,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

func (s *identityService) SignOut(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
		s.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	return nil
}

// CreateAccount registers credentials for a moderator. Moderator rights themselves
// come from the doctor record with the same email.
func (s *identityService) CreateAccount(ctx context.Context, email, password string) (*entity.Account, error) {
	email = strings.TrimSpace(email)

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	account := &entity.Account{ID: uuid.New(), Email: email, PasswordHash: string(hash)}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.log.Warnf("Failed to create account: %+v", err)
		return nil, err
	}
	return account, nil
}
