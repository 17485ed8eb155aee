package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message delivered to a single user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// NotificationEvent is produced by the workflow and handed to the notifier.
type NotificationEvent struct {
	Recipients []uuid.UUID
	Title      string
	Message    string
}

// DashboardStats summarizes the caller's workload.
type DashboardStats struct {
	Username            string
	Role                UserRole
	TotalDocuments      int
	PendingRequests     int
	UnreadNotifications int
}
