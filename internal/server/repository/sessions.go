package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

// SessionsRepository хранит сессии входа в PostgreSQL.
//
// Используется для:
//   - проверки cookie на каждом запросе (Get)
//   - выхода (Revoke)
//   - очистки просроченных записей при старте (DeleteExpired)
type SessionsRepository struct {
	conn
}

func NewSessionsRepository(db *sql.DB, opts ...Option) *SessionsRepository {
	return &SessionsRepository{conn: newConn(db, opts)}
}

func (r *SessionsRepository) Create(ctx context.Context, s *models.Session) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, persistent, created_at, expires_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		s.ID, s.UserID, s.Persistent, s.CreatedAt, s.ExpiresAt,
	)
	if err != nil {
		return internalErr("create session", err)
	}
	return nil
}

// Get возвращает сессию по id. Отозванные и истёкшие тоже возвращаются,
// решение принимает сервис.
func (r *SessionsRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var (
		s         models.Session
		revokedAt sql.NullTime
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, persistent, created_at, expires_at, revoked_at
		   FROM sessions
		  WHERE id=$1`,
		id,
	).Scan(&s.ID, &s.UserID, &s.Persistent, &s.CreatedAt, &s.ExpiresAt, &revokedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serr.ErrNotFound
		}
		return nil, internalErr("get session", err)
	}

	if revokedAt.Valid {
		t := revokedAt.Time
		s.RevokedAt = &t
	}
	return &s, nil
}

// Revoke помечает сессию отозванной. Повторный вызов не ошибка.
func (r *SessionsRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions
		    SET revoked_at = now()
		  WHERE id = $1
		    AND revoked_at IS NULL`,
		id,
	)
	if err != nil {
		return internalErr("revoke session", err)
	}
	return nil
}

// DeleteExpired удаляет истёкшие и отозванные сессии, возвращает число удалённых.
func (r *SessionsRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at <= $1 OR revoked_at IS NOT NULL`,
		now,
	)
	if err != nil {
		return 0, internalErr("delete expired sessions", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, internalErr("delete expired sessions", err)
	}
	return n, nil
}
