package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded file with descriptive metadata and a lifecycle status.
// Status is mutated only by the workflow; documents are never hard-deleted.
type Document struct {
	ID           uuid.UUID
	Title        string
	Description  string
	DocumentType DocumentType
	FileRef      string
	Status       DocumentStatus
	Version      int
	OwnerID      uuid.UUID
	CreatedAt    time.Time
}

// IsOwnedBy reports whether the given identity created the document.
func (d *Document) IsOwnedBy(userID uuid.UUID) bool {
	return d.OwnerID == userID
}

// DocumentFilter contains filtering/pagination parameters for document listing.
type DocumentFilter struct {
	// Search matches title or description, case-insensitive substring.
	Search string
	// Status is an exact status, DocumentStatusPendingFilter, or empty for all.
	Status string
	Limit  int
	Offset int
}

// PendingOnly reports whether the filter selects both pending states.
func (f DocumentFilter) PendingOnly() bool {
	return f.Status == DocumentStatusPendingFilter
}
