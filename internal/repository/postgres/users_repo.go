package postgres

import (
	"context"

	"github.com/baharkarakas/groupledger/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/groupledger/internal/repository"
)

const userColumns = `id, group_id, name, email, password_hash, role, created_at, updated_at`

type usersRepo struct{ pool *pgxpool.Pool }

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.GroupID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func insertUser(ctx context.Context, q querier, u models.User) (models.User, error) {
	return scanUser(q.QueryRow(ctx,
		`INSERT INTO users(id, group_id, name, email, password_hash, role)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING `+userColumns,
		uuid.NewString(), u.GroupID, u.Name, u.Email, u.PasswordHash, u.Role,
	))
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	created, err := insertUser(ctx, r.pool, u)
	return created, mapErr(err)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
	return u, mapErr(err)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email))
	return u, mapErr(err)
}

func (r *usersRepo) ListByGroup(ctx context.Context, groupID string) ([]models.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE group_id=$1 ORDER BY created_at, id`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) Update(ctx context.Context, u models.User) (models.User, error) {
	updated, err := scanUser(r.pool.QueryRow(ctx,
		`UPDATE users
		    SET name=$2, email=$3, password_hash=$4, role=$5, updated_at=now()
		  WHERE id=$1
		  RETURNING `+userColumns,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role,
	))
	return updated, mapErr(err)
}

func (r *usersRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
