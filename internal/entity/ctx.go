package entity

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

type ctxKey int8

const (
	ctxKeyUser ctxKey = iota
)

// User is the authenticated account holder (tenant). Authentication itself
// happens upstream; the API layer only carries the already-verified identity.
type User struct {
	ID uuid.UUID
}

func CtxWithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, u)
}

func UserFromCtx(ctx context.Context) (User, error) {
	u, ok := ctx.Value(ctxKeyUser).(User)
	if !ok {
		return User{}, fmt.Errorf("%w: no user in context", ErrUnauthorized)
	}

	return u, nil
}
