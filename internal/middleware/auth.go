package middleware

import (
	"net/http"
	"strings"

	"github.com/baharkarakas/groupledger/internal/api/httpx"
	"github.com/baharkarakas/groupledger/internal/auth"
	"github.com/baharkarakas/groupledger/internal/metrics"
	"github.com/baharkarakas/groupledger/internal/models"
)

type AuthMiddleware struct {
	TM *auth.TokenManager
}

func NewAuthMiddleware(tm *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{TM: tm}
}

// Auth requires "Authorization: Bearer <access token>".
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if len(ah) < len("Bearer ") || !strings.EqualFold(ah[:len("Bearer ")], "bearer ") {
			metrics.AuthFailures.WithLabelValues("missing_token").Inc()
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", nil)
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		claims, err := m.TM.ParseAccess(token)
		if err != nil {
			metrics.AuthFailures.WithLabelValues("invalid_token").Inc()
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid access token", nil)
			return
		}
		ctx := WithUser(r.Context(), UserCtx{
			UserID:  claims.UserID,
			GroupID: claims.GroupID,
			Role:    models.Role(claims.Role),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
