package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

// JobsRepository хранит работы (таблица jobs).
type JobsRepository struct {
	conn
}

func NewJobsRepository(db *sql.DB, opts ...Option) *JobsRepository {
	return &JobsRepository{conn: newConn(db, opts)}
}

// List возвращает все работы по возрастанию id вместе с именем лидера.
// Если лидер удалён, LeaderName пустой.
func (r *JobsRepository) List(ctx context.Context) ([]models.Job, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT j.id, j.team_leader, j.job, j.work_size, j.collaborators, j.is_finished,
		       j.start_date, j.end_date, j.user_id,
		       COALESCE(TRIM(u.surname || ' ' || u.name), '')
		  FROM jobs j
		  LEFT JOIN users u ON u.id = j.team_leader
		 ORDER BY j.id
	`)
	if err != nil {
		return nil, internalErr("list jobs", err)
	}
	defer rows.Close()

	jobs := make([]models.Job, 0)
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(
			&j.ID, &j.TeamLeader, &j.Title, &j.WorkSize, &j.Collaborators, &j.IsFinished,
			&j.StartDate, &j.EndDate, &j.OwnerID, &j.LeaderName,
		); err != nil {
			return nil, internalErr("scan job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, internalErr("iterate jobs", err)
	}
	return jobs, nil
}

func (r *JobsRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var j models.Job
	err := r.db.QueryRowContext(ctx, `
		SELECT id, team_leader, job, work_size, collaborators, is_finished,
		       start_date, end_date, user_id
		  FROM jobs
		 WHERE id=$1
	`, id).Scan(
		&j.ID, &j.TeamLeader, &j.Title, &j.WorkSize, &j.Collaborators, &j.IsFinished,
		&j.StartDate, &j.EndDate, &j.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serr.ErrNotFound
		}
		return nil, internalErr("get job", err)
	}
	return &j, nil
}

// Create сохраняет работу. Даты начала и окончания проставляет база.
func (r *JobsRepository) Create(ctx context.Context, j *models.Job) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO jobs (team_leader, job, work_size, collaborators, is_finished, user_id)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, start_date, end_date
	`,
		j.TeamLeader, j.Title, j.WorkSize, j.Collaborators, j.IsFinished, j.OwnerID,
	).Scan(&j.ID, &j.StartDate, &j.EndDate)
	if err != nil {
		return 0, internalErr("create job", err)
	}
	return j.ID, nil
}

// Update перезаписывает изменяемые поля работы. Владелец и даты не меняются.
func (r *JobsRepository) Update(ctx context.Context, j *models.Job) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE jobs
		   SET team_leader=$2, job=$3, work_size=$4, collaborators=$5, is_finished=$6
		 WHERE id=$1
	`,
		j.ID, j.TeamLeader, j.Title, j.WorkSize, j.Collaborators, j.IsFinished,
	)
	if err != nil {
		return internalErr("update job", err)
	}
	return requireAffected(res, "update job")
}

func (r *JobsRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id=$1`, id)
	if err != nil {
		return internalErr("delete job", err)
	}
	return requireAffected(res, "delete job")
}

func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return internalErr(op, err)
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}
