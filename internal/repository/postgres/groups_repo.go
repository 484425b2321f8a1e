package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/groupledger/internal/models"
)

type groupsRepo struct{ pool *pgxpool.Pool }

func (r *groupsRepo) GetByID(ctx context.Context, id string) (models.Group, error) {
	var g models.Group
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM groups WHERE id=$1`, id,
	).Scan(&g.ID, &g.Name, &g.CreatedAt)
	return g, mapErr(err)
}

// CreateWithAdmin inserts the group and its first user in one transaction.
func (r *groupsRepo) CreateWithAdmin(ctx context.Context, g models.Group, admin models.User) (models.Group, models.User, error) {
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		g.ID = uuid.NewString()
		if err := tx.QueryRow(ctx,
			`INSERT INTO groups(id, name) VALUES($1,$2) RETURNING created_at`,
			g.ID, g.Name,
		).Scan(&g.CreatedAt); err != nil {
			return err
		}
		admin.GroupID = g.ID
		created, err := insertUser(ctx, tx, admin)
		if err != nil {
			return err
		}
		admin = created
		return nil
	})
	if err != nil {
		return models.Group{}, models.User{}, mapErr(err)
	}
	return g, admin, nil
}

func withTx(ctx context.Context, pool *pgxpool.Pool, fn func(pgx.Tx) error) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
