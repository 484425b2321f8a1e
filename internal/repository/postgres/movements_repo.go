package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/groupledger/internal/models"
	"github.com/baharkarakas/groupledger/internal/repository"
)

const movementColumns = `id, group_id, user_id, date, type, concept, amount, created_at, updated_at`

type movementsRepo struct{ pool *pgxpool.Pool }

func scanMovement(row pgx.Row) (models.Movement, error) {
	var m models.Movement
	err := row.Scan(&m.ID, &m.GroupID, &m.UserID, &m.Date, &m.Type, &m.Concept, &m.Amount, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *movementsRepo) Create(ctx context.Context, m models.Movement) (models.Movement, error) {
	created, err := scanMovement(r.pool.QueryRow(ctx,
		`INSERT INTO movements(id, group_id, user_id, date, type, concept, amount)
		 VALUES($1,$2,$3,$4,$5,$6,$7)
		 RETURNING `+movementColumns,
		uuid.NewString(), m.GroupID, m.UserID, m.Date, m.Type, m.Concept, m.Amount,
	))
	return created, mapErr(err)
}

func (r *movementsRepo) GetByID(ctx context.Context, id string) (models.Movement, error) {
	m, err := scanMovement(r.pool.QueryRow(ctx, `SELECT `+movementColumns+` FROM movements WHERE id=$1`, id))
	return m, mapErr(err)
}

func (r *movementsRepo) ListByGroup(ctx context.Context, groupID string) ([]models.Movement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+movementColumns+`
		   FROM movements
		  WHERE group_id=$1
		  ORDER BY date DESC, created_at DESC`,
		groupID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *movementsRepo) Update(ctx context.Context, m models.Movement) (models.Movement, error) {
	updated, err := scanMovement(r.pool.QueryRow(ctx,
		`UPDATE movements
		    SET date=$2, type=$3, concept=$4, amount=$5, updated_at=now()
		  WHERE id=$1
		  RETURNING `+movementColumns,
		m.ID, m.Date, m.Type, m.Concept, m.Amount,
	))
	return updated, mapErr(err)
}

func (r *movementsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM movements WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
