package service

import (
	"context"
	"strings"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

// DepartmentsService повторяет JobsService для департаментов: шеф вместо лидера.
type DepartmentsService struct {
	departments DepartmentsRepo
	users       UsersRepo
}

type DepartmentInput struct {
	Title   string
	Chief   int64
	Members string
	Email   string
}

func NewDepartmentsService(departments DepartmentsRepo, users UsersRepo) *DepartmentsService {
	return &DepartmentsService{departments: departments, users: users}
}

func (s *DepartmentsService) List(ctx context.Context) ([]models.Department, error) {
	return s.departments.List(ctx)
}

func (s *DepartmentsService) Create(ctx context.Context, in DepartmentInput, actor *models.User) (*models.Department, error) {
	if actor == nil {
		return nil, serr.ErrUnauthorized
	}
	if err := s.checkChief(ctx, in.Chief); err != nil {
		return nil, err
	}

	d := &models.Department{OwnerID: actor.ID}
	applyDepartmentInput(d, in)
	if _, err := s.departments.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// GetForEdit возвращает департамент, если actor вправе его менять, иначе ErrNotFound.
func (s *DepartmentsService) GetForEdit(ctx context.Context, id int64, actor *models.User) (*models.Department, error) {
	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.OwnedBy(actor) {
		return nil, serr.ErrNotFound
	}
	return d, nil
}

func (s *DepartmentsService) Update(ctx context.Context, id int64, in DepartmentInput, actor *models.User) (*models.Department, error) {
	d, err := s.GetForEdit(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := s.checkChief(ctx, in.Chief); err != nil {
		return nil, err
	}

	applyDepartmentInput(d, in)
	if err := s.departments.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DepartmentsService) Delete(ctx context.Context, id int64, actor *models.User) error {
	if _, err := s.GetForEdit(ctx, id, actor); err != nil {
		return err
	}
	return s.departments.Delete(ctx, id)
}

func (s *DepartmentsService) checkChief(ctx context.Context, id int64) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return serr.ErrUnknownChief
	}
	return nil
}

func applyDepartmentInput(d *models.Department, in DepartmentInput) {
	d.Title = strings.TrimSpace(in.Title)
	d.Chief = in.Chief
	d.Members = strings.TrimSpace(in.Members)
	d.Email = strings.TrimSpace(in.Email)
}
