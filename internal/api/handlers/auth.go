package handlers

import (
	"net/http"

	"github.com/baharkarakas/groupledger/internal/api/httpx"
	"github.com/baharkarakas/groupledger/internal/api/validate"
	"github.com/baharkarakas/groupledger/internal/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterInput
	if !decode(w, r, &req, func() error {
		return validate.Collect(
			validate.Required("name", req.Name),
			validate.Email("email", req.Email),
			validate.MinLen("password", req.Password, services.MinPasswordLength),
			validate.Required("company_name", req.CompanyName),
		)
	}) {
		return
	}
	res, err := h.svc.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, res)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if !decode(w, r, &req, func() error {
		return validate.Collect(
			validate.Required("email", req.Email),
			validate.Required("password", req.Password),
		)
	}) {
		return
	}
	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if !decode(w, r, &req, func() error {
		return validate.Collect(validate.Required("refresh_token", req.RefreshToken))
	}) {
		return
	}
	pair, err := h.svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pair)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req services.ResetPasswordInput
	if !decode(w, r, &req, func() error {
		return validate.Collect(
			validate.Email("email", req.Email),
			validate.Email("admin_email", req.AdminEmail),
			validate.Required("admin_password", req.AdminPassword),
			validate.MinLen("new_password", req.NewPassword, services.MinPasswordLength),
		)
	}) {
		return
	}
	if err := h.svc.ResetPassword(r.Context(), req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
