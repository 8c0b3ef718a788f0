package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/config"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/repository"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/service"
)

// для тестов
var (
	OpenDB           = config.OpenDB
	MigrateUp        = config.MigrateUp
	MigrateDown      = config.MigrateDown
	OpenRepositories = openRepositories
	ReadPassword     = readPassword
)

// Store — открытые хранилища и функция их закрытия.
type Store struct {
	Repos  service.Repositories
	Checks []func(ctx context.Context) error
	Close  func()
}

// openRepositories собирает репозитории поверх Postgres.
// Сессии лежат в Postgres или Redis в зависимости от auth.sessions.store.
func openRepositories(ctx context.Context, cfg *config.Config, db *sql.DB) (*Store, error) {
	timeout := repository.WithQueryTimeout(cfg.DB.QueryTimeout)
	st := &Store{
		Repos: service.Repositories{
			Users:       repository.NewUsersRepository(db, timeout),
			Jobs:        repository.NewJobsRepository(db, timeout),
			Departments: repository.NewDepartmentsRepository(db, timeout),
			Sessions:    repository.NewSessionsRepository(db, timeout),
		},
		Checks: []func(ctx context.Context) error{db.PingContext},
		Close:  func() {},
	}

	if cfg.Auth.Sessions.Store != "redis" {
		return st, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	st.Repos.Sessions = repository.NewRedisSessionsRepository(rdb)
	st.Checks = append(st.Checks, func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	st.Close = func() { _ = rdb.Close() }
	return st, nil
}
