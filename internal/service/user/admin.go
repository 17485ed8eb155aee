package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/access"
)

// DefaultListLimit is the page size used when ListUsers gets no limit.
const DefaultListLimit = 50

// SetUserRole changes the role of a user (admin only).
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	caller, err := access.Require(ctx, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role: must be 'USER' or 'ADMIN'")
	}

	// Prevent admin from demoting themselves.
	if caller.ID == targetUserID && role == domain.UserRoleUser {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	user, err := s.changeRole(ctx, caller.ID, targetUserID, role)
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("user_id", caller.ID.String()),
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	return user, nil
}

// ListUsers returns a paginated list of all users (admin only).
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	if _, err := access.Require(ctx, domain.UserRoleAdmin); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("user.CountUsers: %w", err)
	}

	return users, total, nil
}

// changeRole updates the role and records who did it in one transaction.
func (s *Service) changeRole(ctx context.Context, by, target uuid.UUID, role domain.UserRole) (*domain.User, error) {
	var user *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.users.GetByID(txCtx, target)
		if err != nil {
			return err
		}

		user, err = s.users.UpdateRole(txCtx, target, role)
		if err != nil {
			return err
		}

		_, err = s.audit.Create(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     by,
			EntityType: domain.EntityTypeUser,
			EntityID:   &user.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"role": map[string]any{"old": before.Role.String(), "new": role.String()},
			},
			CreatedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
