package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/groupledger/internal/api/httpx"
	"github.com/baharkarakas/groupledger/internal/api/validate"
	"github.com/baharkarakas/groupledger/internal/models"
	"github.com/baharkarakas/groupledger/internal/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

var roles = []string{string(models.RoleAdmin), string(models.RoleUser)}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	users, err := h.svc.List(r.Context(), a.GroupID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var req services.CreateUserInput
	if !decode(w, r, &req, func() error {
		var role *validate.ErrField
		if req.Role != "" {
			role = validate.OneOf("role", string(req.Role), roles...)
		}
		return validate.Collect(
			validate.Required("name", req.Name),
			validate.Email("email", req.Email),
			validate.MinLen("password", req.Password, services.MinPasswordLength),
			role,
		)
	}) {
		return
	}
	u, err := h.svc.Create(r.Context(), a, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var patch services.UserPatch
	if !decode(w, r, &patch, func() error {
		var email, password, role *validate.ErrField
		if patch.Email != nil {
			email = validate.Email("email", *patch.Email)
		}
		if patch.Password != nil {
			password = validate.MinLen("password", *patch.Password, services.MinPasswordLength)
		}
		if patch.Role != nil {
			role = validate.OneOf("role", string(*patch.Role), roles...)
		}
		return validate.Collect(email, password, role)
	}) {
		return
	}
	u, err := h.svc.Update(r.Context(), a, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), a, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
