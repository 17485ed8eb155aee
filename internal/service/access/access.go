// Package access is the single authorization gate for workflow operations.
package access

import (
	"context"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/pkg/ctxutil"
)

// ActorFromCtx rebuilds the authenticated identity carried by ctx.
// Returns domain.ErrUnauthorized when no identity is present.
func ActorFromCtx(ctx context.Context) (domain.Actor, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return domain.Actor{
		ID:       id,
		Username: ctxutil.UsernameFromCtx(ctx),
		Role:     domain.UserRole(ctxutil.UserRoleFromCtx(ctx)),
	}, nil
}

// Require returns the caller when it holds exactly the given role.
// Missing identity yields domain.ErrUnauthorized, a role mismatch domain.ErrForbidden.
func Require(ctx context.Context, role domain.UserRole) (domain.Actor, error) {
	actor, err := ActorFromCtx(ctx)
	if err != nil {
		return domain.Actor{}, err
	}
	if err := actor.Authorize(role); err != nil {
		return domain.Actor{}, err
	}
	return actor, nil
}

// RequireAny returns the caller for any authenticated identity.
func RequireAny(ctx context.Context) (domain.Actor, error) {
	return ActorFromCtx(ctx)
}
