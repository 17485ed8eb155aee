package domain

import "strings"

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// ParseUserRole accepts any letter case ("admin", "Admin", "ADMIN").
func ParseUserRole(s string) (UserRole, bool) {
	r := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// DocumentStatus is the lifecycle state of a Document.
type DocumentStatus string

const (
	DocumentStatusActive         DocumentStatus = "ACTIVE"
	DocumentStatusPendingDelete  DocumentStatus = "PENDING_DELETE"
	DocumentStatusPendingReplace DocumentStatus = "PENDING_REPLACE"
)

// DocumentStatusPendingFilter is the synthetic list filter matching both
// pending document states.
const DocumentStatusPendingFilter = "PENDING"

func (s DocumentStatus) String() string { return string(s) }

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusActive, DocumentStatusPendingDelete, DocumentStatusPendingReplace:
		return true
	}
	return false
}

// IsPending reports whether the document is locked by an outstanding request.
func (s DocumentStatus) IsPending() bool {
	return s == DocumentStatusPendingDelete || s == DocumentStatusPendingReplace
}

// DocumentType classifies the uploaded file.
type DocumentType string

const (
	DocumentTypePDF   DocumentType = "PDF"
	DocumentTypeDOC   DocumentType = "DOC"
	DocumentTypeImage DocumentType = "IMG"
	DocumentTypeOther DocumentType = "OTHER"
)

func (t DocumentType) String() string { return string(t) }

func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypePDF, DocumentTypeDOC, DocumentTypeImage, DocumentTypeOther:
		return true
	}
	return false
}

// RequestType is the mutation a PermissionRequest asks for.
type RequestType string

const (
	RequestTypeDelete  RequestType = "DELETE"
	RequestTypeReplace RequestType = "REPLACE"
)

func (t RequestType) String() string { return string(t) }

func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeDelete, RequestTypeReplace:
		return true
	}
	return false
}

// PendingDocumentStatus returns the document status that locks a document
// while a request of this type is outstanding.
func (t RequestType) PendingDocumentStatus() DocumentStatus {
	if t == RequestTypeReplace {
		return DocumentStatusPendingReplace
	}
	return DocumentStatusPendingDelete
}

// PendingRequestStatus returns the initial status of a request of this type.
func (t RequestType) PendingRequestStatus() RequestStatus {
	if t == RequestTypeReplace {
		return RequestStatusPendingReplace
	}
	return RequestStatusPendingDelete
}

// RequestStatus is the state of a PermissionRequest.
type RequestStatus string

const (
	RequestStatusPendingDelete  RequestStatus = "PENDING_DELETE"
	RequestStatusPendingReplace RequestStatus = "PENDING_REPLACE"
	RequestStatusApproved       RequestStatus = "APPROVED"
	RequestStatusRejected       RequestStatus = "REJECTED"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPendingDelete, RequestStatusPendingReplace,
		RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// IsPending reports whether the status starts with PENDING.
func (s RequestStatus) IsPending() bool {
	return strings.HasPrefix(string(s), "PENDING")
}

// IsTerminal reports whether no further transition is permitted.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// PendingRequestStatuses lists the unresolved request states.
func PendingRequestStatuses() []RequestStatus {
	return []RequestStatus{RequestStatusPendingDelete, RequestStatusPendingReplace}
}

// TerminalRequestStatuses lists the resolved request states.
func TerminalRequestStatuses() []RequestStatus {
	return []RequestStatus{RequestStatusApproved, RequestStatusRejected}
}

// Decision is an administrator's verdict on a pending request.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

func (d Decision) String() string { return string(d) }

func (d Decision) IsValid() bool {
	switch d {
	case DecisionApprove, DecisionReject:
		return true
	}
	return false
}

// ResultStatus returns the terminal request status this decision produces.
func (d Decision) ResultStatus() RequestStatus {
	if d == DecisionApprove {
		return RequestStatusApproved
	}
	return RequestStatusRejected
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeDocument          EntityType = "DOCUMENT"
	EntityTypePermissionRequest EntityType = "PERMISSION_REQUEST"
	EntityTypeUser              EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeDocument, EntityTypePermissionRequest, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionSubmit  AuditAction = "SUBMIT"
	AuditActionApprove AuditAction = "APPROVE"
	AuditActionReject  AuditAction = "REJECT"
	AuditActionUpdate  AuditAction = "UPDATE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionSubmit, AuditActionApprove, AuditActionReject, AuditActionUpdate:
		return true
	}
	return false
}
