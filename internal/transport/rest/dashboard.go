package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dms-backend/internal/domain"
)

type dashboardService interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
}

// DashboardHandler serves GET /api/dashboard.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type dashboardResponse struct {
	Username            string `json:"username"`
	Role                string `json:"role"`
	TotalDocuments      int    `json:"total_documents"`
	PendingRequests     int    `json:"pending_requests"`
	UnreadNotifications int    `json:"unread_notifications"`
}

// Stats handles GET /api/dashboard.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Username:            stats.Username,
		Role:                stats.Role.String(),
		TotalDocuments:      stats.TotalDocuments,
		PendingRequests:     stats.PendingRequests,
		UnreadNotifications: stats.UnreadNotifications,
	})
}
