package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/baharkarakas/groupledger/internal/repository"
)

const (
	uniqueViolation = "23505"
	// raised for ids that are not valid uuids
	invalidTextRepresentation = "22P02"
)

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return repository.ErrConflict
		case invalidTextRepresentation:
			return repository.ErrNotFound
		}
	}
	return err
}
