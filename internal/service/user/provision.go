package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/dms-backend/internal/domain"
)

// The operations below serve the operator CLI, which runs outside any
// request identity. They must not be exposed over HTTP.

// Provision creates a new identity.
func (s *Service) Provision(ctx context.Context, input ProvisionInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	role, _ := domain.ParseUserRole(input.Role)
	now := s.now()
	u := &domain.User{
		ID:        uuid.New(),
		Username:  strings.TrimSpace(input.Username),
		Email:     input.email(),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var created *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.users.Create(txCtx, u)
		if err != nil {
			return err
		}

		_, err = s.audit.Create(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     created.ID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"username": created.Username, "role": created.Role.String()},
			CreatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.Provision: %w", err)
	}

	s.log.InfoContext(ctx, "user provisioned",
		slog.String("target_user_id", created.ID.String()),
		slog.String("username", created.Username),
		slog.String("role", created.Role.String()),
	)

	return created, nil
}

// Promote grants the ADMIN role to the named user. Promoting an admin is a no-op.
func (s *Service) Promote(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("user.Promote: %w", err)
	}
	if u.Role.IsAdmin() {
		return u, nil
	}

	promoted, err := s.changeRole(ctx, u.ID, u.ID, domain.UserRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("user.Promote: %w", err)
	}

	s.log.InfoContext(ctx, "user promoted",
		slog.String("target_user_id", promoted.ID.String()),
		slog.String("username", promoted.Username),
	)

	return promoted, nil
}

// Lookup returns a user by username.
func (s *Service) Lookup(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("user.Lookup: %w", err)
	}
	return u, nil
}
