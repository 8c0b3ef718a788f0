package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

const redisSessionPrefix = "session:"

// RedisSessionsRepository хранит сессии в Redis с TTL до expires_at.
// Отзыв удаляет ключ, поэтому DeleteExpired здесь ничего не делает.
type RedisSessionsRepository struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRedisSessionsRepository(rdb *redis.Client) *RedisSessionsRepository {
	return &RedisSessionsRepository{rdb: rdb, now: time.Now}
}

type redisSession struct {
	UserID     int64     `json:"user_id"`
	Persistent bool      `json:"persistent"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func redisSessionKey(id uuid.UUID) string {
	return redisSessionPrefix + id.String()
}

func (r *RedisSessionsRepository) Create(ctx context.Context, s *models.Session) error {
	ttl := s.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(redisSession{
		UserID:     s.UserID,
		Persistent: s.Persistent,
		CreatedAt:  s.CreatedAt,
		ExpiresAt:  s.ExpiresAt,
	})
	if err != nil {
		return internalErr("encode session", err)
	}

	if err := r.rdb.Set(ctx, redisSessionKey(s.ID), raw, ttl).Err(); err != nil {
		return internalErr("create session", err)
	}
	return nil
}

func (r *RedisSessionsRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	raw, err := r.rdb.Get(ctx, redisSessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, serr.ErrNotFound
		}
		return nil, internalErr("get session", err)
	}

	var rs redisSession
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, internalErr("decode session", err)
	}

	return &models.Session{
		ID:         id,
		UserID:     rs.UserID,
		Persistent: rs.Persistent,
		CreatedAt:  rs.CreatedAt,
		ExpiresAt:  rs.ExpiresAt,
	}, nil
}

func (r *RedisSessionsRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	if err := r.rdb.Del(ctx, redisSessionKey(id)).Err(); err != nil {
		return internalErr("revoke session", err)
	}
	return nil
}

func (r *RedisSessionsRepository) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}
