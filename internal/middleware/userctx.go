package middleware

import (
	"context"

	"github.com/baharkarakas/groupledger/internal/models"
)

type userKey struct{}

// UserCtx is the authenticated caller as carried on the request context.
type UserCtx struct {
	UserID  string
	GroupID string
	Role    models.Role
}

func WithUser(ctx context.Context, u UserCtx) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

func FromCtx(ctx context.Context) (UserCtx, bool) {
	u, ok := ctx.Value(userKey{}).(UserCtx)
	return u, ok
}
