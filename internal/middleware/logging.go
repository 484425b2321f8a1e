package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/baharkarakas/groupledger/internal/logger"
)

// RequestLogger attaches a request-scoped logger to the context and writes one
// line per request once it completes. It must run after RequestID.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			l := base.With("request_id", RequestIDFrom(r.Context()))
			rec := record(w)

			next.ServeHTTP(rec, r.WithContext(logger.WithContext(r.Context(), l)))

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}
			l.Log(r.Context(), level, "http request",
				"method", r.Method,
				"route", routePattern(r),
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
