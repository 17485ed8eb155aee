// Package notification serves a user's own notifications.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/access"
)

type notificationRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (*domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service lists notifications and marks them read.
type Service struct {
	notifications notificationRepo
	log           *slog.Logger
}

// NewService creates a new notification service.
func NewService(log *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		notifications: notifications,
		log:           log.With("service", "notification"),
	}
}

// List returns the caller's notifications, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Notification, error) {
	actor, err := access.RequireAny(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.notifications.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}
	return list, nil
}

// MarkRead marks one of the caller's notifications as read. Notifications of
// other users are reported as not found.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	actor, err := access.RequireAny(ctx)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	n, err := s.notifications.MarkRead(ctx, actor.ID, id)
	if err != nil {
		return nil, fmt.Errorf("notification.MarkRead: %w", err)
	}

	s.log.DebugContext(ctx, "notification read",
		slog.String("user_id", actor.ID.String()),
		slog.String("notification_id", id.String()),
	)
	return n, nil
}

// UnreadCount returns how many of the caller's notifications are unread.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	actor, err := access.RequireAny(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.notifications.CountUnread(ctx, actor.ID)
	if err != nil {
		return 0, fmt.Errorf("notification.UnreadCount: %w", err)
	}
	return n, nil
}
