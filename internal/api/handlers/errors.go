package handlers

import (
	"errors"
	"net/http"

	"github.com/baharkarakas/groupledger/internal/api/httpx"
	"github.com/baharkarakas/groupledger/internal/api/validate"
	"github.com/baharkarakas/groupledger/internal/logger"
	"github.com/baharkarakas/groupledger/internal/middleware"
	"github.com/baharkarakas/groupledger/internal/services"
)

// writeServiceError maps service sentinels onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_input", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidPeriod):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_period", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", nil)
	case errors.Is(err, services.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "forbidden", err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, services.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, "email_taken", err.Error(), nil)
	case errors.Is(err, services.ErrCannotDeleteSelf):
		httpx.WriteError(w, http.StatusConflict, "cannot_delete_self", err.Error(), nil)
	default:
		logger.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}

// decode reads the body into dst and runs the field checks; it answers 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}, checks func() error) bool {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return false
	}
	if checks == nil {
		return true
	}
	if err := checks(); err != nil {
		var errs validate.Errs
		if errors.As(err, &errs) {
			httpx.WriteError(w, http.StatusBadRequest, "validation_failed", "validation failed", errs)
		} else {
			httpx.WriteError(w, http.StatusBadRequest, "validation_failed", err.Error(), nil)
		}
		return false
	}
	return true
}

func actor(w http.ResponseWriter, r *http.Request) (services.Actor, bool) {
	u, ok := middleware.FromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "unauthorized", nil)
		return services.Actor{}, false
	}
	return services.Actor{UserID: u.UserID, GroupID: u.GroupID, Role: u.Role}, true
}
