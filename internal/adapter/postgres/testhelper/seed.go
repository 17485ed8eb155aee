package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dms-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser inserts a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	email := "user-" + suffix + "@example.com"
	ts := now()
	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + suffix,
		Email:     &email,
		Role:      role,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedDocument inserts a document owned by ownerID in the given status.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, title string, status domain.DocumentStatus) domain.Document {
	t.Helper()

	doc := domain.Document{
		ID:           uuid.New(),
		Title:        title,
		Description:  "description of " + title,
		DocumentType: domain.DocumentTypePDF,
		FileRef:      "files/" + uniqueSuffix() + ".pdf",
		Status:       status,
		Version:      1,
		OwnerID:      ownerID,
		CreatedAt:    now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO documents (id, title, description, document_type, file_ref, status, version, owner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		doc.ID, doc.Title, doc.Description, string(doc.DocumentType), doc.FileRef,
		string(doc.Status), doc.Version, doc.OwnerID, doc.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument: %v", err)
	}

	return doc
}

// SeedPendingRequest inserts a pending request and moves the document into
// the matching pending status.
func SeedPendingRequest(t *testing.T, pool *pgxpool.Pool, doc domain.Document, typ domain.RequestType) domain.PermissionRequest {
	t.Helper()
	ctx := context.Background()

	req := domain.PermissionRequest{
		ID:          uuid.New(),
		DocumentID:  doc.ID,
		RequestType: typ,
		Status:      typ.PendingRequestStatus(),
		RequestedBy: doc.OwnerID,
		CreatedAt:   now(),
	}

	if _, err := pool.Exec(ctx,
		`UPDATE documents SET status = $2 WHERE id = $1`,
		doc.ID, string(typ.PendingDocumentStatus()),
	); err != nil {
		t.Fatalf("testhelper: SeedPendingRequest update document: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO permission_requests (id, document_id, request_type, status, requested_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		req.ID, req.DocumentID, string(req.RequestType), string(req.Status), req.RequestedBy, req.CreatedAt,
	); err != nil {
		t.Fatalf("testhelper: SeedPendingRequest insert: %v", err)
	}

	return req
}
