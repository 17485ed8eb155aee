package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/workflow"
)

type permissionService interface {
	ListPendingRequests(ctx context.Context) ([]domain.PermissionRequest, error)
	ListResolvedRequests(ctx context.Context) ([]domain.PermissionRequest, error)
	ResolveRequest(ctx context.Context, input workflow.ResolveRequestInput) (*domain.PermissionRequest, error)
	ApproveRequest(ctx context.Context, requestID uuid.UUID) (*domain.PermissionRequest, error)
	RejectRequest(ctx context.Context, requestID uuid.UUID) (*domain.PermissionRequest, error)
}

// PermissionHandler serves permission request REST endpoints.
type PermissionHandler struct {
	svc permissionService
	log *slog.Logger
}

// NewPermissionHandler creates a PermissionHandler.
func NewPermissionHandler(svc permissionService, logger *slog.Logger) *PermissionHandler {
	return &PermissionHandler{svc: svc, log: logger.With("handler", "permission")}
}

type permissionResponse struct {
	ID          string     `json:"id"`
	DocumentID  string     `json:"documentId"`
	Document    string     `json:"document,omitempty"`
	Action      string     `json:"action"`
	Status      string     `json:"status"`
	RequestedBy string     `json:"requestedBy"`
	Requester   string     `json:"requester,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ApprovedBy  *string    `json:"approvedBy"`
	ApprovedAt  *time.Time `json:"approvedAt"`
}

type resolveRequest struct {
	Decision string `json:"decision"`
}

// ListPending handles GET /api/permissions.
func (h *PermissionHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListPendingRequests(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPermissionResponses(list))
}

// History handles GET /api/permissions/admin/history.
func (h *PermissionHandler) History(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListResolvedRequests(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPermissionResponses(list))
}

// Resolve handles POST /api/permissions/{id} with {"decision": "APPROVE"|"REJECT"}.
func (h *PermissionHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var body resolveRequest
	if err := decodeJSON(r, &body); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	req, err := h.svc.ResolveRequest(r.Context(), workflow.ResolveRequestInput{
		RequestID: id,
		Decision:  domain.Decision(body.Decision),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPermissionResponse(*req))
}

// Approve handles POST /api/permissions/{id}/approve.
func (h *PermissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.ApproveRequest)
}

// Reject handles POST /api/permissions/{id}/reject.
func (h *PermissionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.RejectRequest)
}

func (h *PermissionHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, uuid.UUID) (*domain.PermissionRequest, error),
) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	req, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPermissionResponse(*req))
}

func toPermissionResponses(list []domain.PermissionRequest) []permissionResponse {
	out := make([]permissionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPermissionResponse(p))
	}
	return out
}

func toPermissionResponse(p domain.PermissionRequest) permissionResponse {
	return permissionResponse{
		ID:          p.ID.String(),
		DocumentID:  p.DocumentID.String(),
		Document:    p.DocumentTitle,
		Action:      p.RequestType.String(),
		Status:      p.Status.String(),
		RequestedBy: p.RequestedBy.String(),
		Requester:   p.RequesterUsername,
		CreatedAt:   p.CreatedAt,
		ApprovedBy:  p.ApproverUsername,
		ApprovedAt:  p.ApprovedAt,
	}
}
