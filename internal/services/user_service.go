package services

import (
	"context"
	"fmt"

	"github.com/baharkarakas/groupledger/internal/auth"
	"github.com/baharkarakas/groupledger/internal/models"
	repo "github.com/baharkarakas/groupledger/internal/repository"
	"github.com/baharkarakas/groupledger/internal/worker"
)

type UserService struct {
	r     repo.Users
	audit auditor
}

func NewUserService(repos repo.Repositories, wp *worker.Pool) *UserService {
	return &UserService{r: repos.Users, audit: auditor{logs: repos.AuditLogs, wp: wp}}
}

type CreateUserInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// UserPatch holds the fields of a partial update; nil means unchanged.
type UserPatch struct {
	Name     *string      `json:"name,omitempty"`
	Email    *string      `json:"email,omitempty"`
	Password *string      `json:"password,omitempty"`
	Role     *models.Role `json:"role,omitempty"`
}

func (s *UserService) List(ctx context.Context, groupID string) ([]models.User, error) {
	users, err := s.r.ListByGroup(ctx, groupID)
	return users, translate(err, "list users")
}

// inGroup loads a user and hides users of other groups behind ErrNotFound.
func (s *UserService) inGroup(ctx context.Context, actor Actor, id string) (models.User, error) {
	u, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.User{}, translate(err, "user")
	}
	if u.GroupID != actor.GroupID {
		return models.User{}, fmt.Errorf("user: %w", ErrNotFound)
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, actor Actor, in CreateUserInput) (models.User, error) {
	if !actor.IsAdmin() {
		return models.User{}, fmt.Errorf("only admins can add users: %w", ErrForbidden)
	}
	if err := checkPassword(in.Password); err != nil {
		return models.User{}, err
	}
	u := models.User{GroupID: actor.GroupID, Name: in.Name, Email: in.Email, Role: in.Role}
	if err := u.Validate(); err != nil {
		return models.User{}, invalid(err.Error())
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}
	u.PasswordHash = hash

	created, err := s.r.Create(ctx, u)
	if err != nil {
		return models.User{}, translate(err, "create user")
	}
	s.audit.record(actor, "user", created.ID, "created", map[string]any{"role": created.Role})
	return created, nil
}

// Update applies patch to a user of the actor's group. Admins may edit anyone;
// members may edit only themselves and never their own role.
func (s *UserService) Update(ctx context.Context, actor Actor, id string, patch UserPatch) (models.User, error) {
	if !actor.IsAdmin() && actor.UserID != id {
		return models.User{}, fmt.Errorf("cannot edit other users: %w", ErrForbidden)
	}
	u, err := s.inGroup(ctx, actor, id)
	if err != nil {
		return models.User{}, err
	}

	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil && *patch.Role != u.Role {
		if !actor.IsAdmin() {
			return models.User{}, fmt.Errorf("cannot change own role: %w", ErrForbidden)
		}
		u.Role = *patch.Role
	}
	if err := u.Validate(); err != nil {
		return models.User{}, invalid(err.Error())
	}
	if patch.Password != nil {
		if err := checkPassword(*patch.Password); err != nil {
			return models.User{}, err
		}
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return models.User{}, err
		}
		u.PasswordHash = hash
	}

	updated, err := s.r.Update(ctx, u)
	if err != nil {
		return models.User{}, translate(err, "update user")
	}
	s.audit.record(actor, "user", id, "updated", nil)
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("only admins can remove users: %w", ErrForbidden)
	}
	if actor.UserID == id {
		return ErrCannotDeleteSelf
	}
	if _, err := s.inGroup(ctx, actor, id); err != nil {
		return err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return translate(err, "delete user")
	}
	s.audit.record(actor, "user", id, "deleted", nil)
	return nil
}
