package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

func TestDepartmentsRepository_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDepartmentsRepository(db)

	mock.ExpectQuery(`SELECT .* FROM departments d\s+LEFT JOIN users u`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "chief", "members", "email", "user_id", "chief_name"}).
			AddRow(int64(1), "geological exploration", int64(1), "2, 3", "geo@mars.org", int64(1), "Scott Ridley"))

	deps, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, deps, 1)
	require.Equal(t, "geological exploration", deps[0].Title)
	require.Equal(t, "Scott Ridley", deps[0].ChiefName)
}

func TestDepartmentsRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDepartmentsRepository(db)

	mock.ExpectQuery(`SELECT .* FROM departments WHERE id=\$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "chief", "members", "email", "user_id"}).
			AddRow(int64(1), "geo", int64(2), "3", "geo@mars.org", int64(5)))
	mock.ExpectQuery(`SELECT .* FROM departments WHERE id=\$1`).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	d, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(5), d.OwnerID)
	require.Equal(t, int64(2), d.Chief)

	_, err = repo.GetByID(context.Background(), 2)
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestDepartmentsRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDepartmentsRepository(db)

	d := &models.Department{Title: "geo", Chief: 2, Members: "3", Email: "geo@mars.org", OwnerID: 5}

	mock.ExpectQuery(`INSERT INTO departments`).
		WithArgs("geo", int64(2), "3", "geo@mars.org", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	id, err := repo.Create(context.Background(), d)
	require.NoError(t, err)
	require.Equal(t, int64(4), id)
}

func TestDepartmentsRepository_UpdateDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDepartmentsRepository(db)

	d := &models.Department{ID: 4, Title: "geo", Chief: 2, Members: "3", Email: "geo@mars.org"}

	mock.ExpectExec(`UPDATE departments`).
		WithArgs(int64(4), "geo", int64(2), "3", "geo@mars.org").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM departments`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Update(context.Background(), d))
	require.ErrorIs(t, repo.Delete(context.Background(), 4), serr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
