package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/access"
)

// ListDocuments returns one page of documents matching the filter together
// with the total number of matches. Any authenticated caller may list.
func (s *Service) ListDocuments(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, int, error) {
	if _, err := access.RequireAny(ctx); err != nil {
		return nil, 0, err
	}

	if filter.Limit < 0 {
		return nil, 0, domain.NewValidationError("limit", "must be >= 0")
	}
	if filter.Offset < 0 {
		return nil, 0, domain.NewValidationError("offset", "must be >= 0")
	}

	docs, total, err := s.documents.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	return docs, total, nil
}

// GetDocument returns a single document. Any authenticated caller may read.
func (s *Service) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if _, err := access.RequireAny(ctx); err != nil {
		return nil, err
	}

	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// ListPendingRequests returns the outstanding requests, newest first.
func (s *Service) ListPendingRequests(ctx context.Context) ([]domain.PermissionRequest, error) {
	if _, err := access.Require(ctx, domain.UserRoleAdmin); err != nil {
		return nil, err
	}

	list, err := s.requests.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	return list, nil
}

// ListResolvedRequests returns resolved requests, most recently resolved first.
func (s *Service) ListResolvedRequests(ctx context.Context) ([]domain.PermissionRequest, error) {
	if _, err := access.Require(ctx, domain.UserRoleAdmin); err != nil {
		return nil, err
	}

	list, err := s.requests.ListResolved(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resolved requests: %w", err)
	}
	return list, nil
}

// DocumentHistory returns the audit trail of a document and of every request
// filed against it, newest first.
func (s *Service) DocumentHistory(ctx context.Context, documentID uuid.UUID) ([]domain.AuditRecord, error) {
	if _, err := access.Require(ctx, domain.UserRoleAdmin); err != nil {
		return nil, err
	}

	if _, err := s.documents.GetByID(ctx, documentID); err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	records, err := s.audit.ListForDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("document history: %w", err)
	}
	return records, nil
}
