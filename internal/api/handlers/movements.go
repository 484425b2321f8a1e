package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/groupledger/internal/api/httpx"
	"github.com/baharkarakas/groupledger/internal/api/validate"
	"github.com/baharkarakas/groupledger/internal/models"
	"github.com/baharkarakas/groupledger/internal/services"
)

type MovementHandler struct {
	svc *services.MovementService
}

func NewMovementHandler(svc *services.MovementService) *MovementHandler {
	return &MovementHandler{svc: svc}
}

var movementTypes = []string{string(models.MovementIncome), string(models.MovementExpense)}

func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	out, err := h.svc.List(r.Context(), a)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *MovementHandler) Create(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var req services.CreateMovementInput
	if !decode(w, r, &req, func() error {
		return validate.Collect(
			validate.Date("date", req.Date, models.DateLayout),
			validate.OneOf("type", string(req.Type), movementTypes...),
			validate.Required("concept", req.Concept),
			validate.MinFloat("amount", req.Amount, 0),
		)
	}) {
		return
	}
	m, err := h.svc.Create(r.Context(), a, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, m)
}

func (h *MovementHandler) Update(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var patch models.MovementPatch
	if !decode(w, r, &patch, func() error {
		var date, typ, concept, amount *validate.ErrField
		if patch.Date != nil {
			date = validate.Date("date", *patch.Date, models.DateLayout)
		}
		if patch.Type != nil {
			typ = validate.OneOf("type", string(*patch.Type), movementTypes...)
		}
		if patch.Concept != nil {
			concept = validate.Required("concept", *patch.Concept)
		}
		if patch.Amount != nil {
			amount = validate.MinFloat("amount", *patch.Amount, 0)
		}
		return validate.Collect(date, typ, concept, amount)
	}) {
		return
	}
	m, err := h.svc.Update(r.Context(), a, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, m)
}

func (h *MovementHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
