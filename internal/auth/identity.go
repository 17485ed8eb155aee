package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/dms-backend/internal/domain"
)

type tokenParser interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

type userLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// IdentityResolver turns a bearer token into the acting identity.
// The role is read from the user store so promotions apply without reissuing tokens.
type IdentityResolver struct {
	tokens tokenParser
	users  userLookup
}

// NewIdentityResolver creates a resolver backed by a token parser and user store.
func NewIdentityResolver(tokens tokenParser, users userLookup) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, users: users}
}

// ResolveIdentity validates the token and loads its subject.
// Any failure, including a deleted user, yields domain.ErrUnauthorized.
func (r *IdentityResolver) ResolveIdentity(ctx context.Context, token string) (domain.Actor, error) {
	userID, _, err := r.tokens.ValidateAccessToken(token)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Actor{}, fmt.Errorf("%w: unknown subject", domain.ErrUnauthorized)
		}
		return domain.Actor{}, fmt.Errorf("load user: %w", err)
	}
	return user.Actor(), nil
}
