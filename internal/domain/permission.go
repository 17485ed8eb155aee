package domain

import (
	"time"

	"github.com/google/uuid"
)

// PermissionRequest records a requested mutation against a Document and its
// resolution. ApprovedBy and ApprovedAt are set together, exactly once.
type PermissionRequest struct {
	ID          uuid.UUID
	DocumentID  uuid.UUID
	RequestType RequestType
	Status      RequestStatus
	RequestedBy uuid.UUID
	CreatedAt   time.Time
	ApprovedBy  *uuid.UUID
	ApprovedAt  *time.Time

	// Read-side enrichment, filled by list queries.
	DocumentTitle     string
	RequesterUsername string
	ApproverUsername  *string
}

// IsPending reports whether the request still awaits a decision.
func (p *PermissionRequest) IsPending() bool {
	return p.Status.IsPending()
}

// Resolve applies an administrator's decision. The caller must have checked
// that the request is pending.
func (p *PermissionRequest) Resolve(decision Decision, by uuid.UUID, at time.Time) {
	p.Status = decision.ResultStatus()
	p.ApprovedBy = &by
	p.ApprovedAt = &at
}
