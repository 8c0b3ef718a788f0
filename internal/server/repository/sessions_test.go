package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

func TestSessionsRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionsRepository(db)
	now := time.Now()
	s := &models.Session{ID: uuid.New(), UserID: 1, Persistent: true, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}

	mock.ExpectExec(`INSERT INTO sessions`).
		WithArgs(s.ID, s.UserID, true, s.CreatedAt, s.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), s))
}

func TestSessionsRepository_Get(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionsRepository(db)
	now := time.Now()
	id := uuid.New()
	cols := []string{"id", "user_id", "persistent", "created_at", "expires_at", "revoked_at"}

	mock.ExpectQuery(`SELECT .* FROM sessions`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(id.String(), int64(2), false, now, now.Add(time.Hour), nil))
	mock.ExpectQuery(`SELECT .* FROM sessions`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(id.String(), int64(2), false, now, now.Add(time.Hour), now))
	mock.ExpectQuery(`SELECT .* FROM sessions`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	s, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, int64(2), s.UserID)
	require.Nil(t, s.RevokedAt)

	s, err = repo.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, s.RevokedAt)

	_, err = repo.Get(context.Background(), id)
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestSessionsRepository_RevokeAndCleanup(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionsRepository(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectExec(`UPDATE sessions`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM sessions`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.Revoke(context.Background(), id))

	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
}

// Интеграционный тест: нужен живой Redis в TEST_REDIS_ADDR.
func TestRedisSessionsRepository(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	ctx := context.Background()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewRedisSessionsRepository(rdb)
	now := time.Now().UTC().Truncate(time.Second)
	s := &models.Session{ID: uuid.New(), UserID: 9, Persistent: true, CreatedAt: now, ExpiresAt: now.Add(time.Minute)}

	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, s.UserID, got.UserID)
	require.True(t, got.Persistent)
	require.True(t, got.ExpiresAt.Equal(s.ExpiresAt))

	ttl, err := rdb.TTL(ctx, redisSessionKey(s.ID)).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	require.NoError(t, repo.Revoke(ctx, s.ID))
	_, err = repo.Get(ctx, s.ID)
	require.ErrorIs(t, err, serr.ErrNotFound)
}
