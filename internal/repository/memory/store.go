// Package memory keeps every repository in process memory. It backs the
// "memory" data backend and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/groupledger/internal/models"
	"github.com/baharkarakas/groupledger/internal/repository"
)

type Store struct {
	mu        sync.RWMutex
	groups    map[string]models.Group
	users     map[string]models.User
	userOrder []string
	movements map[string]models.Movement
	audit     []models.AuditLog
	now       func() time.Time
}

func New() *Store {
	return &Store{
		groups:    make(map[string]models.Group),
		users:     make(map[string]models.User),
		movements: make(map[string]models.Movement),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Repositories exposes the store through the repository interfaces.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Groups:    groupsRepo{s},
		Users:     usersRepo{s},
		Movements: movementsRepo{s},
		AuditLogs: auditLogsRepo{s},
	}
}

// AuditLogs returns a copy of the recorded audit entries.
func (s *Store) AuditLogs() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AuditLog(nil), s.audit...)
}

// ---------- groups ----------

type groupsRepo struct{ s *Store }

func (r groupsRepo) GetByID(_ context.Context, id string) (models.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g, ok := r.s.groups[id]
	if !ok {
		return models.Group{}, repository.ErrNotFound
	}
	return g, nil
}

func (r groupsRepo) CreateWithAdmin(_ context.Context, g models.Group, admin models.User) (models.Group, models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.emailTaken(admin.Email, "") {
		return models.Group{}, models.User{}, repository.ErrConflict
	}
	g.ID = uuid.NewString()
	g.CreatedAt = r.s.now()
	r.s.groups[g.ID] = g

	admin.GroupID = g.ID
	return g, r.s.insertUser(admin), nil
}

// ---------- users ----------

type usersRepo struct{ s *Store }

func (s *Store) emailTaken(email, exceptID string) bool {
	for id, u := range s.users {
		if u.Email == email && id != exceptID {
			return true
		}
	}
	return false
}

func (s *Store) insertUser(u models.User) models.User {
	u.ID = uuid.NewString()
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	return u
}

func (r usersRepo) Create(_ context.Context, u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.emailTaken(u.Email, "") {
		return models.User{}, repository.ErrConflict
	}
	return r.s.insertUser(u), nil
}

func (r usersRepo) GetByID(_ context.Context, id string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r usersRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

// ListByGroup returns users in creation order.
func (r usersRepo) ListByGroup(_ context.Context, groupID string) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.User{}
	for _, id := range r.s.userOrder {
		if u, ok := r.s.users[id]; ok && u.GroupID == groupID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r usersRepo) Update(_ context.Context, u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users[u.ID]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	if r.s.emailTaken(u.Email, u.ID) {
		return models.User{}, repository.ErrConflict
	}
	u.GroupID = cur.GroupID
	u.CreatedAt = cur.CreatedAt
	u.UpdatedAt = r.s.now()
	r.s.users[u.ID] = u
	return u, nil
}

func (r usersRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, id)
	for i, uid := range r.s.userOrder {
		if uid == id {
			r.s.userOrder = append(r.s.userOrder[:i], r.s.userOrder[i+1:]...)
			break
		}
	}
	return nil
}

// ---------- movements ----------

type movementsRepo struct{ s *Store }

func (r movementsRepo) Create(_ context.Context, m models.Movement) (models.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m.ID = uuid.NewString()
	m.CreatedAt = r.s.now()
	m.UpdatedAt = nil
	r.s.movements[m.ID] = m
	return m, nil
}

func (r movementsRepo) GetByID(_ context.Context, id string) (models.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.movements[id]
	if !ok {
		return models.Movement{}, repository.ErrNotFound
	}
	return m, nil
}

// ListByGroup orders by date, newest first, then by creation time.
func (r movementsRepo) ListByGroup(_ context.Context, groupID string) ([]models.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.Movement{}
	for _, m := range r.s.movements {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r movementsRepo) Update(_ context.Context, m models.Movement) (models.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.movements[m.ID]
	if !ok {
		return models.Movement{}, repository.ErrNotFound
	}
	now := r.s.now()
	m.GroupID = cur.GroupID
	m.CreatedAt = cur.CreatedAt
	m.UpdatedAt = &now
	r.s.movements[m.ID] = m
	return m, nil
}

func (r movementsRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movements[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.movements, id)
	return nil
}

// ---------- audit ----------

type auditLogsRepo struct{ s *Store }

func (r auditLogsRepo) Create(_ context.Context, l models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l.ID = uuid.NewString()
	l.CreatedAt = r.s.now()
	r.s.audit = append(r.s.audit, l)
	return nil
}
