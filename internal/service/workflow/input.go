package workflow

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dms-backend/internal/domain"
)

// CreateDocumentInput holds the parameters for registering an uploaded document.
type CreateDocumentInput struct {
	Title        string
	Description  string
	DocumentType string
	FileRef      string
}

// Validate checks all fields and collects all errors.
func (i CreateDocumentInput) Validate() error {
	var errs []domain.FieldError

	title := domain.NormalizeTitle(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}

	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}

	docType := strings.TrimSpace(i.DocumentType)
	switch {
	case docType == "":
		errs = append(errs, domain.FieldError{Field: "document_type", Message: "required"})
	case !i.documentType().IsValid():
		errs = append(errs, domain.FieldError{Field: "document_type", Message: "must be one of PDF, DOC, IMG, OTHER"})
	}

	if strings.TrimSpace(i.FileRef) == "" {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateDocumentInput) documentType() domain.DocumentType {
	return domain.DocumentType(strings.ToUpper(strings.TrimSpace(i.DocumentType)))
}

// SubmitRequestInput holds the parameters for asking to replace or delete a document.
type SubmitRequestInput struct {
	DocumentID  uuid.UUID
	RequestType domain.RequestType
}

// Validate checks all fields and collects all errors.
func (i SubmitRequestInput) Validate() error {
	var errs []domain.FieldError

	if i.DocumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "document_id", Message: "required"})
	}
	if !i.RequestType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "request_type", Message: "must be DELETE or REPLACE"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResolveRequestInput holds an administrator's decision on a request.
type ResolveRequestInput struct {
	RequestID uuid.UUID
	Decision  domain.Decision
}

// Validate checks all fields and collects all errors.
func (i ResolveRequestInput) Validate() error {
	var errs []domain.FieldError

	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be APPROVE or REJECT"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
