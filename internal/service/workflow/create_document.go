package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/access"
)

// CreateDocument registers an uploaded file as a new ACTIVE document owned
// by the caller.
func (s *Service) CreateDocument(ctx context.Context, input CreateDocumentInput) (*domain.Document, error) {
	actor, err := access.Require(ctx, domain.UserRoleUser)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:           uuid.New(),
		Title:        domain.NormalizeTitle(input.Title),
		Description:  strings.TrimSpace(input.Description),
		DocumentType: input.documentType(),
		FileRef:      strings.TrimSpace(input.FileRef),
		Status:       domain.DocumentStatusActive,
		Version:      1,
		OwnerID:      actor.ID,
		CreatedAt:    s.now(),
	}

	var created *domain.Document
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.documents.Create(txCtx, doc)
		if createErr != nil {
			return fmt.Errorf("create document: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     actor.ID,
			EntityType: domain.EntityTypeDocument,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"title":         created.Title,
				"document_type": string(created.DocumentType),
				"status":        map[string]any{"new": string(created.Status)},
			},
			CreatedAt: doc.CreatedAt,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "document created",
		slog.String("user_id", actor.ID.String()),
		slog.String("document_id", created.ID.String()),
		slog.String("document_type", string(created.DocumentType)),
	)

	return created, nil
}
