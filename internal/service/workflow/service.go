// Package workflow implements the document lifecycle and the permission
// request workflow that couples a document's status to a request's outcome.
package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dms-backend/internal/domain"
)

type documentRepo interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) (*domain.Document, error)
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, int, error)
}

type requestRepo interface {
	Create(ctx context.Context, p *domain.PermissionRequest) (*domain.PermissionRequest, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.PermissionRequest, error)
	Resolve(ctx context.Context, p *domain.PermissionRequest) (*domain.PermissionRequest, error)
	ListPending(ctx context.Context) ([]domain.PermissionRequest, error)
	ListResolved(ctx context.Context) ([]domain.PermissionRequest, error)
}

type userRepo interface {
	ListIDsByRole(ctx context.Context, role domain.UserRole) ([]uuid.UUID, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListForDocument(ctx context.Context, documentID uuid.UUID) ([]domain.AuditRecord, error)
}

type notifier interface {
	Notify(ctx context.Context, recipients []uuid.UUID, title, message string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs document and permission request transitions.
type Service struct {
	documents documentRepo
	requests  requestRepo
	users     userRepo
	audit     auditRepo
	notifier  notifier
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new workflow service.
func NewService(
	log *slog.Logger,
	documents documentRepo,
	requests requestRepo,
	users userRepo,
	audit auditRepo,
	notifier notifier,
	tx txManager,
) *Service {
	return &Service{
		documents: documents,
		requests:  requests,
		users:     users,
		audit:     audit,
		notifier:  notifier,
		tx:        tx,
		log:       log.With("service", "workflow"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}
