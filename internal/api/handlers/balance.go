package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/baharkarakas/groupledger/internal/api/httpx"
	"github.com/baharkarakas/groupledger/internal/balance"
	"github.com/baharkarakas/groupledger/internal/services"
)

type BalanceHandler struct {
	svc *services.BalanceService
	now func() time.Time
}

func NewBalanceHandler(svc *services.BalanceService) *BalanceHandler {
	return &BalanceHandler{svc: svc, now: time.Now}
}

// Monthly answers GET /balance/monthly?year=&month=; missing values default to the current month.
func (h *BalanceHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	p := balance.CurrentPeriod(h.now())
	q := r.URL.Query()
	if v := q.Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 9999 {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_period", "year must be a number between 1 and 9999", nil)
			return
		}
		p.Year = n
	}
	if v := q.Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_period", "month must be a number", nil)
			return
		}
		p.Month = n
	}

	report, err := h.svc.Monthly(r.Context(), a.GroupID, p)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, report)
}
