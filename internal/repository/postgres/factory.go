package postgres

import (
	repo "github.com/baharkarakas/groupledger/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositories(pool *pgxpool.Pool) repo.Repositories {
	return repo.Repositories{
		Groups:    &groupsRepo{pool},
		Users:     &usersRepo{pool},
		Movements: &movementsRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}
