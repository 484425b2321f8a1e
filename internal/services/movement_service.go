package services

import (
	"context"
	"fmt"

	"github.com/baharkarakas/groupledger/internal/metrics"
	"github.com/baharkarakas/groupledger/internal/models"
	repo "github.com/baharkarakas/groupledger/internal/repository"
	"github.com/baharkarakas/groupledger/internal/worker"
)

type MovementService struct {
	movements repo.Movements
	users     repo.Users
	audit     auditor
}

func NewMovementService(repos repo.Repositories, wp *worker.Pool) *MovementService {
	return &MovementService{
		movements: repos.Movements,
		users:     repos.Users,
		audit:     auditor{logs: repos.AuditLogs, wp: wp},
	}
}

type CreateMovementInput struct {
	// UserID defaults to the actor; admins may record on behalf of another member.
	UserID  string              `json:"user_id,omitempty"`
	Date    string              `json:"date"`
	Type    models.MovementType `json:"type"`
	Concept string              `json:"concept"`
	Amount  float64             `json:"amount"`
}

func (s *MovementService) List(ctx context.Context, actor Actor) ([]models.Movement, error) {
	out, err := s.movements.ListByGroup(ctx, actor.GroupID)
	return out, translate(err, "list movements")
}

func (s *MovementService) Create(ctx context.Context, actor Actor, in CreateMovementInput) (models.Movement, error) {
	owner := actor.UserID
	if in.UserID != "" && in.UserID != actor.UserID {
		if !actor.IsAdmin() {
			return models.Movement{}, fmt.Errorf("cannot record movements for other users: %w", ErrForbidden)
		}
		u, err := s.users.GetByID(ctx, in.UserID)
		if err != nil || u.GroupID != actor.GroupID {
			return models.Movement{}, invalid("user_id is not a member of the group")
		}
		owner = u.ID
	}

	m := models.Movement{
		GroupID: actor.GroupID,
		UserID:  owner,
		Date:    in.Date,
		Type:    in.Type,
		Concept: in.Concept,
		Amount:  in.Amount,
	}
	if err := m.Validate(); err != nil {
		return models.Movement{}, invalid(err.Error())
	}

	created, err := s.movements.Create(ctx, m)
	if err != nil {
		return models.Movement{}, translate(err, "create movement")
	}
	metrics.MovementsTotal.WithLabelValues(string(created.Type), "create").Inc()
	s.audit.record(actor, "movement", created.ID, "created", map[string]any{
		"type": created.Type, "amount": created.Amount, "date": created.Date,
	})
	return created, nil
}

// editable loads a movement the actor may change: same group, and owned by the
// actor unless the actor is an admin.
func (s *MovementService) editable(ctx context.Context, actor Actor, id string) (models.Movement, error) {
	m, err := s.movements.GetByID(ctx, id)
	if err != nil {
		return models.Movement{}, translate(err, "movement")
	}
	if m.GroupID != actor.GroupID {
		return models.Movement{}, fmt.Errorf("movement: %w", ErrNotFound)
	}
	if !actor.IsAdmin() && m.UserID != actor.UserID {
		return models.Movement{}, fmt.Errorf("movement belongs to another user: %w", ErrForbidden)
	}
	return m, nil
}

func (s *MovementService) Update(ctx context.Context, actor Actor, id string, patch models.MovementPatch) (models.Movement, error) {
	m, err := s.editable(ctx, actor, id)
	if err != nil {
		return models.Movement{}, err
	}
	patch.Apply(&m)
	if err := m.Validate(); err != nil {
		return models.Movement{}, invalid(err.Error())
	}

	updated, err := s.movements.Update(ctx, m)
	if err != nil {
		return models.Movement{}, translate(err, "update movement")
	}
	metrics.MovementsTotal.WithLabelValues(string(updated.Type), "update").Inc()
	s.audit.record(actor, "movement", id, "updated", nil)
	return updated, nil
}

func (s *MovementService) Delete(ctx context.Context, actor Actor, id string) error {
	m, err := s.editable(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.movements.Delete(ctx, id); err != nil {
		return translate(err, "delete movement")
	}
	metrics.MovementsTotal.WithLabelValues(string(m.Type), "delete").Inc()
	s.audit.record(actor, "movement", id, "deleted", nil)
	return nil
}
