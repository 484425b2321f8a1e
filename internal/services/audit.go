package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/baharkarakas/groupledger/internal/models"
	repo "github.com/baharkarakas/groupledger/internal/repository"
	"github.com/baharkarakas/groupledger/internal/worker"
)

// auditor writes audit entries off the request path when a pool is available.
type auditor struct {
	logs repo.AuditLogs
	wp   *worker.Pool
}

func (a auditor) record(actor Actor, entityType, entityID, action string, details map[string]any) {
	if a.logs == nil {
		return
	}
	entry := models.AuditLog{
		GroupID:    actor.GroupID,
		ActorID:    actor.UserID,
		EntityType: entityType,
		EntityID:   &entityID,
		Action:     action,
		Details:    details,
	}
	write := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.logs.Create(ctx, entry); err != nil {
			slog.Error("audit log", "entity", entityType, "id", entityID, "action", action, "err", err)
		}
	}
	if a.wp == nil || !a.wp.Submit(write) {
		write()
	}
}
