// Package dashboard summarizes the caller's workload.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/access"
)

type documentCounter interface {
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

type requestCounter interface {
	CountPending(ctx context.Context, requestedBy *uuid.UUID) (int, error)
}

type notificationCounter interface {
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service builds dashboard statistics.
type Service struct {
	documents     documentCounter
	requests      requestCounter
	notifications notificationCounter
	log           *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(
	log *slog.Logger,
	documents documentCounter,
	requests requestCounter,
	notifications notificationCounter,
) *Service {
	return &Service{
		documents:     documents,
		requests:      requests,
		notifications: notifications,
		log:           log.With("service", "dashboard"),
	}
}

// Stats returns counters for the caller. Administrators see every pending
// request; users see only their own.
func (s *Service) Stats(ctx context.Context) (domain.DashboardStats, error) {
	actor, err := access.RequireAny(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	stats := domain.DashboardStats{Username: actor.Username, Role: actor.Role}

	stats.TotalDocuments, err = s.documents.CountByOwner(ctx, actor.ID)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard.Stats: count documents: %w", err)
	}

	var requestedBy *uuid.UUID
	if !actor.Role.IsAdmin() {
		requestedBy = &actor.ID
	}
	stats.PendingRequests, err = s.requests.CountPending(ctx, requestedBy)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard.Stats: count pending: %w", err)
	}

	stats.UnreadNotifications, err = s.notifications.CountUnread(ctx, actor.ID)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard.Stats: count unread: %w", err)
	}

	return stats, nil
}
