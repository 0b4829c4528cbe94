package repository

//go:generate mockgen -source=account_repository.go -destination=mocks/account_repository_mock.go -package=mocks

import (
	"context"
	"time"

	"truedoc-admin/internal/domain/entity"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
}

type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session, ttl time.Duration) error
	// Find returns nil, nil when the session is gone or has expired.
	Find(ctx context.Context, sessionID string) (*entity.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
