package http

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

// memStore — хранилище в памяти для сквозных тестов роутера.
type memStore struct {
	mu          sync.Mutex
	users       map[int64]*models.User
	jobs        map[int64]*models.Job
	departments map[int64]*models.Department
	sessions    map[uuid.UUID]*models.Session
	nextID      map[string]int64
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[int64]*models.User{},
		jobs:        map[int64]*models.Job{},
		departments: map[int64]*models.Department{},
		sessions:    map[uuid.UUID]*models.Session{},
		nextID:      map[string]int64{},
	}
}

func (m *memStore) repos() service.Repositories {
	return service.Repositories{
		Users:       memUsers{m},
		Jobs:        memJobs{m},
		Departments: memDepartments{m},
		Sessions:    memSessions{m},
	}
}

func (m *memStore) id(table string) int64 {
	m.nextID[table]++
	return m.nextID[table]
}

func (m *memStore) displayName(id int64) string {
	if u, ok := m.users[id]; ok {
		return u.DisplayName()
	}
	return ""
}

type memUsers struct{ m *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, existing := range r.m.users {
		if existing.Email == u.Email {
			return 0, serr.ErrDuplicateEmail
		}
	}
	cp := *u
	cp.ID = r.m.id("users")
	r.m.users[cp.ID] = &cp
	return cp.ID, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, serr.ErrNotFound
}

func (r memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[id]
	if !ok {
		return nil, serr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) Exists(_ context.Context, id int64) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	_, ok := r.m.users[id]
	return ok, nil
}

type memJobs struct{ m *memStore }

func (r memJobs) List(context.Context) ([]models.Job, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]models.Job, 0, len(r.m.jobs))
	for _, j := range r.m.jobs {
		cp := *j
		cp.LeaderName = r.m.displayName(j.TeamLeader)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (r memJobs) GetByID(_ context.Context, id int64) (*models.Job, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	j, ok := r.m.jobs[id]
	if !ok {
		return nil, serr.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r memJobs) Create(_ context.Context, j *models.Job) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	j.ID = r.m.id("jobs")
	j.StartDate, j.EndDate = time.Now(), time.Now()
	cp := *j
	r.m.jobs[j.ID] = &cp
	return j.ID, nil
}

func (r memJobs) Update(_ context.Context, j *models.Job) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.jobs[j.ID]; !ok {
		return serr.ErrNotFound
	}
	cp := *j
	r.m.jobs[j.ID] = &cp
	return nil
}

func (r memJobs) Delete(_ context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.jobs[id]; !ok {
		return serr.ErrNotFound
	}
	delete(r.m.jobs, id)
	return nil
}

type memDepartments struct{ m *memStore }

func (r memDepartments) List(context.Context) ([]models.Department, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]models.Department, 0, len(r.m.departments))
	for _, d := range r.m.departments {
		cp := *d
		cp.ChiefName = r.m.displayName(d.Chief)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (r memDepartments) GetByID(_ context.Context, id int64) (*models.Department, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	d, ok := r.m.departments[id]
	if !ok {
		return nil, serr.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r memDepartments) Create(_ context.Context, d *models.Department) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	d.ID = r.m.id("departments")
	cp := *d
	r.m.departments[d.ID] = &cp
	return d.ID, nil
}

func (r memDepartments) Update(_ context.Context, d *models.Department) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.departments[d.ID]; !ok {
		return serr.ErrNotFound
	}
	cp := *d
	r.m.departments[d.ID] = &cp
	return nil
}

func (r memDepartments) Delete(_ context.Context, id int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.departments[id]; !ok {
		return serr.ErrNotFound
	}
	delete(r.m.departments, id)
	return nil
}

type memSessions struct{ m *memStore }

func (r memSessions) Create(_ context.Context, s *models.Session) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	cp := *s
	r.m.sessions[s.ID] = &cp
	return nil
}

func (r memSessions) Get(_ context.Context, id uuid.UUID) (*models.Session, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.sessions[id]
	if !ok {
		return nil, serr.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r memSessions) Revoke(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if s, ok := r.m.sessions[id]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (r memSessions) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var n int64
	for id, s := range r.m.sessions {
		if !s.Active(now) {
			delete(r.m.sessions, id)
			n++
		}
	}
	return n, nil
}
