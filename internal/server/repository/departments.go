package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

// DepartmentsRepository хранит департаменты (таблица departments).
type DepartmentsRepository struct {
	conn
}

func NewDepartmentsRepository(db *sql.DB, opts ...Option) *DepartmentsRepository {
	return &DepartmentsRepository{conn: newConn(db, opts)}
}

// List возвращает все департаменты по возрастанию id вместе с именем шефа.
func (r *DepartmentsRepository) List(ctx context.Context) ([]models.Department, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT d.id, d.title, d.chief, d.members, d.email, d.user_id,
		       COALESCE(TRIM(u.surname || ' ' || u.name), '')
		  FROM departments d
		  LEFT JOIN users u ON u.id = d.chief
		 ORDER BY d.id
	`)
	if err != nil {
		return nil, internalErr("list departments", err)
	}
	defer rows.Close()

	deps := make([]models.Department, 0)
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Title, &d.Chief, &d.Members, &d.Email, &d.OwnerID, &d.ChiefName); err != nil {
			return nil, internalErr("scan department", err)
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, internalErr("iterate departments", err)
	}
	return deps, nil
}

func (r *DepartmentsRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var d models.Department
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, chief, members, email, user_id FROM departments WHERE id=$1`,
		id,
	).Scan(&d.ID, &d.Title, &d.Chief, &d.Members, &d.Email, &d.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serr.ErrNotFound
		}
		return nil, internalErr("get department", err)
	}
	return &d, nil
}

func (r *DepartmentsRepository) Create(ctx context.Context, d *models.Department) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO departments (title, chief, members, email, user_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		d.Title, d.Chief, d.Members, d.Email, d.OwnerID,
	).Scan(&d.ID)
	if err != nil {
		return 0, internalErr("create department", err)
	}
	return d.ID, nil
}

func (r *DepartmentsRepository) Update(ctx context.Context, d *models.Department) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE departments
		   SET title=$2, chief=$3, members=$4, email=$5
		 WHERE id=$1
	`,
		d.ID, d.Title, d.Chief, d.Members, d.Email,
	)
	if err != nil {
		return internalErr("update department", err)
	}
	return requireAffected(res, "update department")
}

func (r *DepartmentsRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM departments WHERE id=$1`, id)
	if err != nil {
		return internalErr("delete department", err)
	}
	return requireAffected(res, "delete department")
}
