// Package permission implements the PermissionRequest ledger using PostgreSQL.
package permission

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/dms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dms-backend/internal/domain"
)

// OnePendingIndex is the partial unique index allowing a single outstanding
// request per document.
const OnePendingIndex = "ux_permission_requests_one_pending"

const requestColumns = `id, document_id, request_type, status, requested_by, created_at, approved_by, approved_at`

const (
	createSQL = `
INSERT INTO permission_requests (id, document_id, request_type, status, requested_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + requestColumns

	getByIDSQL      = `SELECT ` + requestColumns + ` FROM permission_requests WHERE id = $1`
	getForUpdateSQL = getByIDSQL + ` FOR UPDATE`

	resolveSQL = `
UPDATE permission_requests
SET status = $2, approved_by = $3, approved_at = $4
WHERE id = $1 AND status LIKE 'PENDING%'
RETURNING ` + requestColumns
)

// Enriched list columns, prefixed for the joined query.
const enrichedColumns = `pr.id, pr.document_id, pr.request_type, pr.status, pr.requested_by,
pr.created_at, pr.approved_by, pr.approved_at, d.title, ru.username, au.username`

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides permission request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new permission request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new pending request. A second pending request for the
// same document yields domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, p *domain.PermissionRequest) (*domain.PermissionRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanRequest(q.QueryRow(ctx, createSQL,
		p.ID, p.DocumentID, string(p.RequestType), string(p.Status), p.RequestedBy, p.CreatedAt,
	))
	if err != nil {
		if postgres.IsConstraintViolation(err, OnePendingIndex) {
			return nil, fmt.Errorf("document %s already has a pending request: %w", p.DocumentID, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "permission_request", p.ID)
	}
	return &created, nil
}

// GetByID returns a request by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PermissionRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanRequest(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "permission_request", id)
	}
	return &p, nil
}

// GetForUpdate reads a request and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.PermissionRequest, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("permission_request %s: lock requires a transaction", id)
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanRequest(q.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "permission_request", id)
	}
	return &p, nil
}

// Resolve persists a decision on a pending request. Requests that are absent
// or already resolved yield domain.ErrNotFound.
func (r *Repo) Resolve(ctx context.Context, p *domain.PermissionRequest) (*domain.PermissionRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	resolved, err := scanRequest(q.QueryRow(ctx, resolveSQL,
		p.ID, string(p.Status), p.ApprovedBy, p.ApprovedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "permission_request", p.ID)
	}
	return &resolved, nil
}

// ListPending returns every outstanding request, newest first.
func (r *Repo) ListPending(ctx context.Context) ([]domain.PermissionRequest, error) {
	return r.listEnriched(ctx,
		squirrel.Eq{"pr.status": statusStrings(domain.PendingRequestStatuses())},
		"pr.created_at DESC", "pr.id DESC",
	)
}

// ListResolved returns every resolved request, most recently resolved first.
func (r *Repo) ListResolved(ctx context.Context) ([]domain.PermissionRequest, error) {
	return r.listEnriched(ctx,
		squirrel.Eq{"pr.status": statusStrings(domain.TerminalRequestStatuses())},
		"pr.approved_at DESC", "pr.id DESC",
	)
}

// CountPending counts outstanding requests. A non-nil requestedBy restricts
// the count to that requester.
func (r *Repo) CountPending(ctx context.Context, requestedBy *uuid.UUID) (int, error) {
	where := squirrel.And{squirrel.Like{"status": "PENDING%"}}
	if requestedBy != nil {
		where = append(where, squirrel.Eq{"requested_by": *requestedBy})
	}

	sql, args, err := psql.Select("count(*)").From("permission_requests").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build pending count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pending requests: %w", err)
	}
	return n, nil
}

func (r *Repo) listEnriched(ctx context.Context, where squirrel.Sqlizer, orderBy ...string) ([]domain.PermissionRequest, error) {
	sql, args, err := psql.Select(enrichedColumns).
		From("permission_requests pr").
		Join("documents d ON d.id = pr.document_id").
		Join("users ru ON ru.id = pr.requested_by").
		LeftJoin("users au ON au.id = pr.approved_by").
		Where(where).
		OrderBy(orderBy...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build permission request list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query permission requests: %w", err)
	}
	list, err := pgx.CollectRows(rows, collectEnriched)
	if err != nil {
		return nil, fmt.Errorf("scan permission requests: %w", err)
	}
	return list, nil
}

func statusStrings(statuses []domain.RequestStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func scanRequest(row pgx.Row) (domain.PermissionRequest, error) {
	var (
		p           domain.PermissionRequest
		requestType string
		status      string
	)
	err := row.Scan(&p.ID, &p.DocumentID, &requestType, &status, &p.RequestedBy,
		&p.CreatedAt, &p.ApprovedBy, &p.ApprovedAt)
	p.RequestType = domain.RequestType(requestType)
	p.Status = domain.RequestStatus(status)
	return p, err
}

func collectEnriched(row pgx.CollectableRow) (domain.PermissionRequest, error) {
	var (
		p           domain.PermissionRequest
		requestType string
		status      string
	)
	err := row.Scan(&p.ID, &p.DocumentID, &requestType, &status, &p.RequestedBy,
		&p.CreatedAt, &p.ApprovedBy, &p.ApprovedAt,
		&p.DocumentTitle, &p.RequesterUsername, &p.ApproverUsername)
	p.RequestType = domain.RequestType(requestType)
	p.Status = domain.RequestStatus(status)
	return p, err
}
