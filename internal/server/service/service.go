// Package service содержит бизнес-логику реестра: вход и сессии, работы, департаменты.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

//go:generate mockgen -source=service.go -destination=mocks/mock_repos.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/config"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users       UsersRepo
	Jobs        JobsRepo
	Departments DepartmentsRepo
	Sessions    SessionsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth        *AuthService
	Jobs        *JobsService
	Departments *DepartmentsService
}

// NewServices собирает все сервисы приложения.
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:        NewAuthService(repos.Users, repos.Sessions, cfg),
		Jobs:        NewJobsService(repos.Jobs, repos.Users),
		Departments: NewDepartmentsService(repos.Departments, repos.Users),
	}
}

// NewPasswordHasher выбирает алгоритм хэширования по password.hasher.
func NewPasswordHasher(cfg config.PasswordConfig) crypto.PasswordHasher {
	if cfg.Hasher == "bcrypt" {
		return crypto.BcryptHasher{Cost: cfg.Bcrypt.Cost}
	}
	return crypto.Argon2Params{
		Time:      cfg.Argon2.Time,
		MemoryKiB: cfg.Argon2.MemoryKiB,
		Threads:   cfg.Argon2.Threads,
		KeyLen:    cfg.Argon2.KeyLen,
		SaltLen:   cfg.Argon2.SaltLen,
	}
}

// UsersRepo — репозиторий пользователей (регистрация, вход, проверка ссылок на пользователя).
type UsersRepo interface {
	Create(ctx context.Context, u *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type JobsRepo interface {
	List(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, j *models.Job) (int64, error)
	Update(ctx context.Context, j *models.Job) error
	Delete(ctx context.Context, id int64) error
}

type DepartmentsRepo interface {
	List(ctx context.Context) ([]models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, d *models.Department) (int64, error)
	Update(ctx context.Context, d *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// SessionsRepo — хранилище сессий: PostgreSQL или Redis.
type SessionsRepo interface {
	Create(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
