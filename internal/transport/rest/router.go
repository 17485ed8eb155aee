package rest

import "net/http"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health        *HealthHandler
	Documents     *DocumentHandler
	Permissions   *PermissionHandler
	Notifications *NotificationHandler
	Dashboard     *DashboardHandler
	Users         *UserHandler
}

// NewRouter registers every endpoint on a ServeMux. Health endpoints stay outside /api
// so infrastructure can reach them without credentials.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/documents", h.Documents.List)
	mux.HandleFunc("POST /api/documents/upload", h.Documents.Upload)
	mux.HandleFunc("GET /api/documents/{id}", h.Documents.Get)
	mux.HandleFunc("GET /api/documents/{id}/file", h.Documents.File)
	mux.HandleFunc("GET /api/documents/{id}/history", h.Documents.History)
	mux.HandleFunc("POST /api/documents/{id}/request-replace", h.Documents.RequestReplace)
	mux.HandleFunc("POST /api/documents/{id}/request-delete", h.Documents.RequestDelete)

	mux.HandleFunc("GET /api/permissions", h.Permissions.ListPending)
	mux.HandleFunc("GET /api/permissions/admin/history", h.Permissions.History)
	mux.HandleFunc("POST /api/permissions/{id}", h.Permissions.Resolve)
	mux.HandleFunc("POST /api/permissions/{id}/approve", h.Permissions.Approve)
	mux.HandleFunc("POST /api/permissions/{id}/reject", h.Permissions.Reject)

	mux.HandleFunc("GET /api/notifications", h.Notifications.List)
	mux.HandleFunc("POST /api/notifications/{id}/read", h.Notifications.MarkRead)

	mux.HandleFunc("GET /api/dashboard", h.Dashboard.Stats)

	mux.HandleFunc("GET /api/auth/me", h.Users.Me)
	mux.HandleFunc("GET /api/admin/users", h.Users.List)
	mux.HandleFunc("PUT /api/admin/users/{id}/role", h.Users.SetRole)

	return mux
}
