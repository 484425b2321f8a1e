package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/baharkarakas/groupledger/internal/repository"
)

func TestMapErr(t *testing.T) {
	other := errors.New("connection reset")

	assert.NoError(t, mapErr(nil))
	assert.ErrorIs(t, mapErr(pgx.ErrNoRows), repository.ErrNotFound)
	assert.ErrorIs(t, mapErr(fmt.Errorf("scan: %w", pgx.ErrNoRows)), repository.ErrNotFound)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: "23505"}), repository.ErrConflict)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: "22P02"}), repository.ErrNotFound)
	assert.NotErrorIs(t, mapErr(&pgconn.PgError{Code: "23503"}), repository.ErrConflict)
	assert.Same(t, other, mapErr(other))
}
