package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/access"
)

// Me returns the authenticated user's record.
// Returns ErrUnauthorized if no identity is found in context.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	actor, err := access.RequireAny(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}

	return user, nil
}
