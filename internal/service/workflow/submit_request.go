package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/access"
)

// SubmitRequest asks an administrator to replace or delete one of the
// caller's documents. The document is locked in the matching pending status
// until the request is resolved. Administrators are notified after commit.
func (s *Service) SubmitRequest(ctx context.Context, input SubmitRequestInput) (*domain.PermissionRequest, error) {
	actor, err := access.Require(ctx, domain.UserRoleUser)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		req *domain.PermissionRequest
		doc *domain.Document
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		doc, getErr = s.documents.GetForUpdate(txCtx, input.DocumentID)
		if getErr != nil {
			return fmt.Errorf("get document: %w", getErr)
		}
		// Foreign documents are reported as missing.
		if !doc.IsOwnedBy(actor.ID) {
			return fmt.Errorf("document %s: %w", input.DocumentID, domain.ErrNotFound)
		}
		if doc.Status != domain.DocumentStatusActive {
			return fmt.Errorf("document %s is %s: %w", doc.ID, doc.Status, domain.ErrConflict)
		}

		pending := input.RequestType.PendingDocumentStatus()
		if _, updErr := s.documents.UpdateStatus(txCtx, doc.ID, pending); updErr != nil {
			return fmt.Errorf("update document status: %w", updErr)
		}
		doc.Status = pending

		var createErr error
		req, createErr = s.requests.Create(txCtx, &domain.PermissionRequest{
			ID:          uuid.New(),
			DocumentID:  doc.ID,
			RequestType: input.RequestType,
			Status:      input.RequestType.PendingRequestStatus(),
			RequestedBy: actor.ID,
			CreatedAt:   s.now(),
		})
		if createErr != nil {
			return fmt.Errorf("create permission request: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     actor.ID,
			EntityType: domain.EntityTypePermissionRequest,
			EntityID:   &req.ID,
			Action:     domain.AuditActionSubmit,
			Changes: map[string]any{
				"document_id":     doc.ID.String(),
				"request_type":    string(req.RequestType),
				"document_status": map[string]any{"old": string(domain.DocumentStatusActive), "new": string(pending)},
			},
			CreatedAt: req.CreatedAt,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	req.DocumentTitle = doc.Title
	req.RequesterUsername = actor.Username

	s.log.InfoContext(ctx, "permission request submitted",
		slog.String("user_id", actor.ID.String()),
		slog.String("request_id", req.ID.String()),
		slog.String("document_id", doc.ID.String()),
		slog.String("request_type", string(req.RequestType)),
	)

	s.notifyAdmins(context.WithoutCancel(ctx), requestSubmittedEvent(actor, doc, req.RequestType))

	return req, nil
}
