package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/access"
)

// ResolveRequest records an administrator's decision on a pending request
// and returns the document to ACTIVE. Resolving twice yields ErrNotFound.
func (s *Service) ResolveRequest(ctx context.Context, input ResolveRequestInput) (*domain.PermissionRequest, error) {
	actor, err := access.Require(ctx, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var resolved *domain.PermissionRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, getErr := s.requests.GetForUpdate(txCtx, input.RequestID)
		if getErr != nil {
			return fmt.Errorf("get permission request: %w", getErr)
		}
		if !req.IsPending() {
			return fmt.Errorf("permission request %s is %s: %w", req.ID, req.Status, domain.ErrNotFound)
		}
		previous := req.Status

		req.Resolve(input.Decision, actor.ID, s.now())

		var resolveErr error
		resolved, resolveErr = s.requests.Resolve(txCtx, req)
		if resolveErr != nil {
			return fmt.Errorf("resolve permission request: %w", resolveErr)
		}

		// Both decisions release the document. An approved DELETE keeps it
		// ACTIVE; the audit trail records the approval.
		if _, updErr := s.documents.UpdateStatus(txCtx, resolved.DocumentID, domain.DocumentStatusActive); updErr != nil {
			return fmt.Errorf("update document status: %w", updErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     actor.ID,
			EntityType: domain.EntityTypePermissionRequest,
			EntityID:   &resolved.ID,
			Action:     auditAction(input.Decision),
			Changes: map[string]any{
				"document_id":  resolved.DocumentID.String(),
				"request_type": string(resolved.RequestType),
				"status":       map[string]any{"old": string(previous), "new": string(resolved.Status)},
			},
			CreatedAt: *resolved.ApprovedAt,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	username := actor.Username
	resolved.ApproverUsername = &username

	s.log.InfoContext(ctx, "permission request resolved",
		slog.String("user_id", actor.ID.String()),
		slog.String("request_id", resolved.ID.String()),
		slog.String("document_id", resolved.DocumentID.String()),
		slog.String("decision", string(input.Decision)),
	)

	return resolved, nil
}

// ApproveRequest approves a pending request.
func (s *Service) ApproveRequest(ctx context.Context, requestID uuid.UUID) (*domain.PermissionRequest, error) {
	return s.ResolveRequest(ctx, ResolveRequestInput{RequestID: requestID, Decision: domain.DecisionApprove})
}

// RejectRequest rejects a pending request.
func (s *Service) RejectRequest(ctx context.Context, requestID uuid.UUID) (*domain.PermissionRequest, error) {
	return s.ResolveRequest(ctx, ResolveRequestInput{RequestID: requestID, Decision: domain.DecisionReject})
}

func auditAction(d domain.Decision) domain.AuditAction {
	if d == domain.DecisionApprove {
		return domain.AuditActionApprove
	}
	return domain.AuditActionReject
}
