// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

// pgUniqueViolation — SQLSTATE нарушения уникального индекса.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// internalErr оборачивает ошибку драйвера в ErrInternal, сохраняя текст для логов.
func internalErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", serr.ErrInternal, op, err)
}

// Option настраивает SQL-репозиторий.
type Option func(*conn)

// WithQueryTimeout ограничивает каждый запрос к базе (db.query_timeout). 0 — без ограничения.
func WithQueryTimeout(d time.Duration) Option {
	return func(c *conn) { c.timeout = d }
}

// conn — общее подключение SQL-репозиториев.
type conn struct {
	db      *sql.DB
	timeout time.Duration
}

func newConn(db *sql.DB, opts []Option) conn {
	c := conn{db: db}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c conn) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}
