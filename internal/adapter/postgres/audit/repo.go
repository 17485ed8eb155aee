// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/dms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dms-backend/internal/domain"
)

// DocumentIDKey is the Changes key linking a request's audit records to its
// document.
const DocumentIDKey = "document_id"

const auditColumns = `id, user_id, entity_type, entity_id, action, changes, created_at`

const (
	createSQL = `
INSERT INTO audit_log (id, user_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + auditColumns

	documentHistorySQL = `
SELECT ` + auditColumns + `
FROM audit_log
WHERE (entity_type = 'DOCUMENT' AND entity_id = $1)
   OR (entity_type = 'PERMISSION_REQUEST' AND changes ->> 'document_id' = $2)
ORDER BY created_at DESC, id DESC`
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// A zero ID or CreatedAt is filled in.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanAuditRecord(q.QueryRow(ctx, createSQL,
		record.ID, record.UserID, string(record.EntityType), record.EntityID,
		string(record.Action), changesJSON, record.CreatedAt,
	))
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return created, nil
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interfaces of the workflow and user services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListForDocument returns the records of a document and of every request
// filed against it, newest first.
func (r *Repo) ListForDocument(ctx context.Context, documentID uuid.UUID) ([]domain.AuditRecord, error) {
	return r.query(ctx, "get audit_records by document", documentHistorySQL, documentID, documentID.String())
}

func (r *Repo) query(ctx context.Context, op, sql string, args ...any) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	records, err := pgx.CollectRows(rows, collectAuditRecord)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanAuditRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		record     domain.AuditRecord
		entityType string
		action     string
		changes    []byte
	)
	if err := row.Scan(&record.ID, &record.UserID, &entityType, &record.EntityID,
		&action, &changes, &record.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}
	record.EntityType = domain.EntityType(entityType)
	record.Action = domain.AuditAction(action)

	if len(changes) > 0 {
		m := make(map[string]any)
		if err := json.Unmarshal(changes, &m); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", record.ID, err)
		}
		record.Changes = m
	}
	return record, nil
}

func collectAuditRecord(row pgx.CollectableRow) (domain.AuditRecord, error) {
	return scanAuditRecord(row)
}
