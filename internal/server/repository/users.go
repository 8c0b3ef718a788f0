package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

type UsersRepository struct {
	conn
}

func NewUsersRepository(db *sql.DB, opts ...Option) *UsersRepository {
	return &UsersRepository{conn: newConn(db, opts)}
}

const userColumns = `id, email, password_hash, surname, name, age, position, speciality, address, created_at, modified_at`

// Create сохраняет пользователя и возвращает присвоенный id.
// Повтор email даёт ErrDuplicateEmail.
func (r *UsersRepository) Create(ctx context.Context, u *models.User) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash, surname, name, age, position, speciality, address)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING id`,
		u.Email, u.PasswordHash, u.Surname, u.Name, u.Age, u.Position, u.Speciality, u.Address,
	).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, serr.ErrDuplicateEmail
		}
		return 0, internalErr("create user", err)
	}

	return id, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`,
		email,
	)
	return scanUser(row, "get user by email")
}

func (r *UsersRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`,
		id,
	)
	return scanUser(row, "get user by id")
}

// Exists проверяет, что пользователь с таким id есть (лидер работы, шеф департамента).
func (r *UsersRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id=$1)`,
		id,
	).Scan(&ok)
	if err != nil {
		return false, internalErr("user exists", err)
	}
	return ok, nil
}

func scanUser(row *sql.Row, op string) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Surname, &u.Name, &u.Age,
		&u.Position, &u.Speciality, &u.Address, &u.CreatedAt, &u.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serr.ErrNotFound
		}
		return nil, internalErr(op, err)
	}
	return &u, nil
}
