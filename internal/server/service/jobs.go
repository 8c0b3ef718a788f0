package service

import (
	"context"
	"strings"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

// JobsService — список, создание, редактирование и удаление работ.
//
// Менять и удалять работу может владелец или суперпользователь (id 1).
// Для остальных работа "не найдена": отсутствие и нехватка прав не различаются.
type JobsService struct {
	jobs  JobsRepo
	users UsersRepo
}

// JobInput — изменяемые поля работы.
type JobInput struct {
	TeamLeader    int64
	Title         string
	WorkSize      int
	Collaborators string
	IsFinished    bool
}

func NewJobsService(jobs JobsRepo, users UsersRepo) *JobsService {
	return &JobsService{jobs: jobs, users: users}
}

// List возвращает все работы. Авторизация не нужна.
func (s *JobsService) List(ctx context.Context) ([]models.Job, error) {
	return s.jobs.List(ctx)
}

// Create сохраняет работу, владельцем становится actor.
func (s *JobsService) Create(ctx context.Context, in JobInput, actor *models.User) (*models.Job, error) {
	if actor == nil {
		return nil, serr.ErrUnauthorized
	}
	if err := s.checkLeader(ctx, in.TeamLeader); err != nil {
		return nil, err
	}

	j := &models.Job{OwnerID: actor.ID}
	applyJobInput(j, in)
	if _, err := s.jobs.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// GetForEdit возвращает работу, если actor вправе её менять, иначе ErrNotFound.
func (s *JobsService) GetForEdit(ctx context.Context, id int64, actor *models.User) (*models.Job, error) {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !j.OwnedBy(actor) {
		return nil, serr.ErrNotFound
	}
	return j, nil
}

// Update перезаписывает все изменяемые поля работы.
// Права проверяются до проверки лидера.
func (s *JobsService) Update(ctx context.Context, id int64, in JobInput, actor *models.User) (*models.Job, error) {
	j, err := s.GetForEdit(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := s.checkLeader(ctx, in.TeamLeader); err != nil {
		return nil, err
	}

	applyJobInput(j, in)
	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JobsService) Delete(ctx context.Context, id int64, actor *models.User) error {
	if _, err := s.GetForEdit(ctx, id, actor); err != nil {
		return err
	}
	return s.jobs.Delete(ctx, id)
}

func (s *JobsService) checkLeader(ctx context.Context, id int64) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return serr.ErrUnknownLeader
	}
	return nil
}

func applyJobInput(j *models.Job, in JobInput) {
	j.TeamLeader = in.TeamLeader
	j.Title = strings.TrimSpace(in.Title)
	j.WorkSize = in.WorkSize
	j.Collaborators = strings.TrimSpace(in.Collaborators)
	j.IsFinished = in.IsFinished
}
