package services

import "github.com/baharkarakas/groupledger/internal/models"

// Actor is the authenticated caller; every operation is scoped to its group.
type Actor struct {
	UserID  string
	GroupID string
	Role    models.Role
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }
