package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"truedoc-admin/internal/domain/entity"
	domainRepo "truedoc-admin/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const RedisSessionKeyPrefix = "session:"

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) domainRepo.SessionRepository {
	return &sessionRepository{client: client}
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, RedisSessionKeyPrefix+session.ID, payload, ttl).Err()
}

func (r *sessionRepository) Find(ctx context.Context, sessionID string) (*entity.Session, error) {
	payload, err := r.client.Get(ctx, RedisSessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	session := new(entity.Session)
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, RedisSessionKeyPrefix+sessionID).Err()
}
