package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/groupledger/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type Groups interface {
	GetByID(ctx context.Context, id string) (models.Group, error)
	// CreateWithAdmin stores a new group and its first user together.
	CreateWithAdmin(ctx context.Context, g models.Group, admin models.User) (models.Group, models.User, error)
}

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	ListByGroup(ctx context.Context, groupID string) ([]models.User, error)
	Update(ctx context.Context, u models.User) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type Movements interface {
	Create(ctx context.Context, m models.Movement) (models.Movement, error)
	GetByID(ctx context.Context, id string) (models.Movement, error)
	// ListByGroup returns every movement of the group regardless of date.
	ListByGroup(ctx context.Context, groupID string) ([]models.Movement, error)
	Update(ctx context.Context, m models.Movement) (models.Movement, error)
	Delete(ctx context.Context, id string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}

type Repositories struct {
	Groups    Groups
	Users     Users
	Movements Movements
	AuditLogs AuditLogs
}
