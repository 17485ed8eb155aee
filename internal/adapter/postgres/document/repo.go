// Package document implements the Document store using PostgreSQL.
package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/dms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dms-backend/internal/domain"
)

const documentColumns = `id, title, description, document_type, file_ref, status, version, owner_id, created_at`

const (
	createSQL = `
INSERT INTO documents (id, title, description, document_type, file_ref, status, version, owner_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + documentColumns

	getByIDSQL      = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	getForUpdateSQL = getByIDSQL + ` FOR UPDATE`

	updateStatusSQL = `
UPDATE documents SET status = $2
WHERE id = $1
RETURNING ` + documentColumns

	countByOwnerSQL = `SELECT count(*) FROM documents WHERE owner_id = $1`
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new document and returns the persisted row.
func (r *Repo) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanDocument(q.QueryRow(ctx, createSQL,
		d.ID, d.Title, d.Description, string(d.DocumentType), d.FileRef,
		string(d.Status), d.Version, d.OwnerID, d.CreatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "document", d.ID)
	}
	return &created, nil
}

// GetByID returns a document by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDocument(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return &d, nil
}

// GetForUpdate reads a document and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("document %s: lock requires a transaction", id)
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDocument(q.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return &d, nil
}

// UpdateStatus sets the lifecycle status of a document.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDocument(q.QueryRow(ctx, updateStatusSQL, id, string(status)))
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return &d, nil
}

// List returns one page of documents matching the filter, newest first,
// together with the total number of matches.
func (r *Repo) List(ctx context.Context, f domain.DocumentFilter) ([]domain.Document, int, error) {
	where := filterPredicate(f)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := psql.Select("count(*)").From("documents").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build document count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}

	sel := psql.Select(documentColumns).From("documents").Where(where).
		OrderBy("created_at DESC", "id DESC")
	if f.Limit > 0 {
		sel = sel.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		sel = sel.Offset(uint64(f.Offset))
	}

	listSQL, listArgs, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build document list: %w", err)
	}
	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("query documents: %w", err)
	}
	docs, err := pgx.CollectRows(rows, collectDocument)
	if err != nil {
		return nil, 0, fmt.Errorf("scan documents: %w", err)
	}
	return docs, total, nil
}

// CountByOwner returns how many documents the user owns.
func (r *Repo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countByOwnerSQL, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count documents of %s: %w", ownerID, err)
	}
	return n, nil
}

func filterPredicate(f domain.DocumentFilter) squirrel.And {
	where := squirrel.And{}

	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	switch {
	case f.PendingOnly():
		where = append(where, squirrel.Eq{"status": []string{
			string(domain.DocumentStatusPendingDelete),
			string(domain.DocumentStatusPendingReplace),
		}})
	case f.Status != "":
		where = append(where, squirrel.Eq{"status": f.Status})
	}

	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanDocument(row pgx.Row) (domain.Document, error) {
	var (
		d            domain.Document
		documentType string
		status       string
	)
	err := row.Scan(&d.ID, &d.Title, &d.Description, &documentType, &d.FileRef,
		&status, &d.Version, &d.OwnerID, &d.CreatedAt)
	d.DocumentType = domain.DocumentType(documentType)
	d.Status = domain.DocumentStatus(status)
	return d, err
}

func collectDocument(row pgx.CollectableRow) (domain.Document, error) {
	return scanDocument(row)
}
