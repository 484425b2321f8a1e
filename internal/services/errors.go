package services

import (
	"errors"
	"fmt"

	"github.com/baharkarakas/groupledger/internal/repository"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPeriod      = errors.New("invalid period")
	ErrCannotDeleteSelf   = errors.New("cannot delete own account")
)

func invalid(msg string) error { return fmt.Errorf("%w: %s", ErrInvalidInput, msg) }

// translate maps storage errors onto the service vocabulary.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, repository.ErrConflict):
		return ErrEmailTaken
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
