package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

func newDepartmentsService(t *testing.T) (*DepartmentsService, *mocks.MockDepartmentsRepo, *mocks.MockUsersRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := mocks.NewMockDepartmentsRepo(ctrl)
	users := mocks.NewMockUsersRepo(ctrl)
	return NewDepartmentsService(deps, users), deps, users
}

func departmentInput() DepartmentInput {
	return DepartmentInput{Title: "geological exploration", Chief: 2, Members: "3, 4", Email: "geo@mars.org"}
}

func TestDepartmentsService_Create(t *testing.T) {
	ctx := context.Background()
	svc, deps, users := newDepartmentsService(t)

	users.EXPECT().Exists(ctx, int64(2)).Return(true, nil)
	deps.EXPECT().Create(ctx, gomock.Any()).Return(int64(4), nil)

	d, err := svc.Create(ctx, departmentInput(), owner)
	require.NoError(t, err)
	require.Equal(t, owner.ID, d.OwnerID)
	require.Equal(t, "geo@mars.org", d.Email)
}

func TestDepartmentsService_Create_UnknownChief(t *testing.T) {
	ctx := context.Background()
	svc, _, users := newDepartmentsService(t)

	users.EXPECT().Exists(ctx, int64(2)).Return(false, nil)

	_, err := svc.Create(ctx, departmentInput(), owner)
	require.ErrorIs(t, err, serr.ErrUnknownChief)
}

func TestDepartmentsService_Create_StoreError(t *testing.T) {
	ctx := context.Background()
	svc, _, users := newDepartmentsService(t)

	users.EXPECT().Exists(ctx, int64(2)).Return(false, serr.ErrInternal)

	_, err := svc.Create(ctx, departmentInput(), owner)
	require.ErrorIs(t, err, serr.ErrInternal)
}

func TestDepartmentsService_List(t *testing.T) {
	ctx := context.Background()
	svc, deps, _ := newDepartmentsService(t)

	deps.EXPECT().List(ctx).Return([]models.Department{{ID: 1}}, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestDepartmentsService_Update(t *testing.T) {
	ctx := context.Background()
	svc, deps, users := newDepartmentsService(t)

	deps.EXPECT().GetByID(ctx, int64(4)).Return(&models.Department{ID: 4, OwnerID: owner.ID}, nil).Times(3)
	users.EXPECT().Exists(ctx, int64(2)).Return(true, nil)
	users.EXPECT().Exists(ctx, int64(2)).Return(false, nil)
	deps.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	_, err := svc.Update(ctx, 4, departmentInput(), stranger)
	require.ErrorIs(t, err, serr.ErrNotFound)

	d, err := svc.Update(ctx, 4, departmentInput(), superuser)
	require.NoError(t, err)
	require.Equal(t, int64(2), d.Chief)

	_, err = svc.Update(ctx, 4, departmentInput(), owner)
	require.ErrorIs(t, err, serr.ErrUnknownChief)
}

func TestDepartmentsService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, deps, _ := newDepartmentsService(t)

	deps.EXPECT().GetByID(ctx, int64(4)).Return(&models.Department{ID: 4, OwnerID: owner.ID}, nil).Times(2)
	deps.EXPECT().Delete(ctx, int64(4)).Return(nil)

	require.ErrorIs(t, svc.Delete(ctx, 4, stranger), serr.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, 4, owner))
}
