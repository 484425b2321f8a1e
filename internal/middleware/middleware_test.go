package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/groupledger/internal/auth"
	"github.com/baharkarakas/groupledger/internal/logger"
	"github.com/baharkarakas/groupledger/internal/models"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestAuth(t *testing.T) {
	tm := auth.NewTokenManager("a", "r", "test", time.Minute, time.Hour)
	pair, err := tm.GeneratePair("u1", "g1", "admin")
	require.NoError(t, err)

	var seen UserCtx
	h := NewAuthMiddleware(tm).Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromCtx(r.Context())
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"refresh token", "Bearer " + pair.RefreshToken, http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + pair.AccessToken, http.StatusOK},
		{"lowercase scheme", "bearer " + pair.AccessToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.status, serve(h, req).Code)
		})
	}
	assert.Equal(t, UserCtx{UserID: "u1", GroupID: "g1", Role: models.RoleAdmin}, seen)
}

func TestRequireRole(t *testing.T) {
	h := RequireRole(models.RoleAdmin)(ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusUnauthorized, serve(h, req).Code)

	req = req.WithContext(WithUser(req.Context(), UserCtx{UserID: "u", Role: models.RoleUser}))
	assert.Equal(t, http.StatusForbidden, serve(h, req).Code)

	req = req.WithContext(WithUser(req.Context(), UserCtx{UserID: "u", Role: models.RoleAdmin}))
	assert.Equal(t, http.StatusNoContent, serve(h, req).Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-123")
	rr = serve(h, req)
	assert.Equal(t, "client-123", seen)
	assert.Equal(t, "client-123", rr.Header().Get(RequestIDHeader))
}

func TestRecover(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }))

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "internal_error")
}

func TestRateLimit(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := rateLimit(2, func() time.Time { return now })(ok)

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		return serve(h, req).Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2:1000"), "buckets are per client")

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:1003"))
}

func TestRateLimit_Disabled(t *testing.T) {
	h := RateLimit(0)(ok)
	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusNoContent, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
}

func TestRequestLoggerAndMetrics(t *testing.T) {
	buf := &bytes.Buffer{}
	r := chi.NewRouter()
	r.Use(RequestID, RequestLogger(logger.NewWithWriter("dev", buf)), HTTPMetrics)
	r.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info("inside")
		w.WriteHeader(http.StatusTeapot)
	})

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/things/42", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	out := buf.String()
	assert.Contains(t, out, "msg=inside")
	assert.Contains(t, out, "request_id="+rr.Header().Get(RequestIDHeader))
	assert.Contains(t, out, "route=/things/{id}")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "level=WARN")
}
