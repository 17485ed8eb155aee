package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"mime"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/heartmarshall/dms-backend/internal/adapter/filestore"
	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/internal/service/access"
	"github.com/heartmarshall/dms-backend/internal/service/workflow"
	"github.com/heartmarshall/dms-backend/internal/transport/dataloader"
)

// multipartMemory bounds the part of an upload held in memory; the rest
// spills to temp files.
const multipartMemory = 8 << 20

type documentService interface {
	CreateDocument(ctx context.Context, input workflow.CreateDocumentInput) (*domain.Document, error)
	SubmitRequest(ctx context.Context, input workflow.SubmitRequestInput) (*domain.PermissionRequest, error)
	ListDocuments(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, int, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	DocumentHistory(ctx context.Context, documentID uuid.UUID) ([]domain.AuditRecord, error)
}

type fileStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Stat(ctx context.Context, ref string) (filestore.FileInfo, error)
	Open(ctx context.Context, ref string) (afero.File, error)
	Remove(ctx context.Context, ref string) error
	URL(ref string) string
}

// PageConfig bounds document list pagination.
type PageConfig struct {
	DefaultSize int
	MaxSize     int
}

// DocumentHandler serves document REST endpoints.
type DocumentHandler struct {
	svc            documentService
	files          fileStore
	page           PageConfig
	maxUploadBytes int64
	log            *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(svc documentService, files fileStore, page PageConfig, maxUploadBytes int64, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		svc:            svc,
		files:          files,
		page:           page,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "document"),
	}
}

type documentResponse struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	DocumentType string        `json:"documentType"`
	Status       string        `json:"status"`
	Version      int           `json:"version"`
	FileURL      string        `json:"fileUrl"`
	FileName     string        `json:"fileName"`
	FileSize     *int64        `json:"fileSize"`
	FileType     *string       `json:"fileType"`
	CreatedBy    *userRefBrief `json:"createdBy"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type userRefBrief struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type documentPage struct {
	Count   int                `json:"count"`
	Page    int                `json:"page"`
	Size    int                `json:"size"`
	Results []documentResponse `json:"results"`
}

type submitResponse struct {
	Message string             `json:"message"`
	Request permissionResponse `json:"request"`
}

type auditResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	EntityType string         `json:"entityType"`
	EntityID   *string        `json:"entityId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// List handles GET /api/documents?search=&status=&page=&size=.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err == nil && page < 1 {
		err = domain.NewValidationError("page", "must be at least 1")
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	size, err := queryInt(r, "size", h.page.DefaultSize)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if size <= 0 {
		size = h.page.DefaultSize
	}
	if h.page.MaxSize > 0 && size > h.page.MaxSize {
		size = h.page.MaxSize
	}
	if size <= 0 {
		size = 1
	}
	if page-1 > math.MaxInt/size {
		handleError(h.log, w, r, domain.NewValidationError("page", "out of range"))
		return
	}

	q := r.URL.Query()
	docs, total, err := h.svc.ListDocuments(r.Context(), domain.DocumentFilter{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Limit:  size,
		Offset: (page - 1) * size,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	results, err := h.toResponses(r.Context(), docs)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, documentPage{
		Count:   total,
		Page:    page,
		Size:    size,
		Results: results,
	})
}

// Upload handles POST /api/documents/upload (multipart: title, description,
// documentType, file).
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// The role gate runs before the body is read so callers who may not
	// upload see 401/403 rather than field errors.
	if _, err := access.Require(r.Context(), domain.UserRoleUser); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("body", "invalid multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	input := workflow.CreateDocumentInput{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		DocumentType: r.FormValue("documentType"),
	}
	if input.DocumentType == "" {
		input.DocumentType = r.FormValue("document_type")
	}

	file, header, err := r.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		handleError(h.log, w, r, domain.NewValidationError("file", "unreadable upload"))
		return
	default:
		defer file.Close()
		input.FileRef = header.Filename
		if input.FileRef == "" {
			input.FileRef = "file"
		}
	}

	// Reject bad metadata before any bytes hit storage.
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ref, err := h.files.Save(r.Context(), header.Filename, file)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.FileRef = ref

	doc, err := h.svc.CreateDocument(r.Context(), input)
	if err != nil {
		if rmErr := h.files.Remove(context.WithoutCancel(r.Context()), ref); rmErr != nil {
			h.log.WarnContext(r.Context(), "remove orphaned upload",
				slog.String("ref", ref),
				slog.String("error", rmErr.Error()),
			)
		}
		handleError(h.log, w, r, err)
		return
	}

	resp, err := h.toResponses(r.Context(), []domain.Document{*doc})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp[0])
}

// Get handles GET /api/documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := h.svc.GetDocument(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp, err := h.toResponses(r.Context(), []domain.Document{*doc})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp[0])
}

// File handles GET /api/documents/{id}/file and streams the stored bytes.
func (h *DocumentHandler) File(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := h.svc.GetDocument(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	f, err := h.files.Open(r.Context(), doc.FileRef)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	name := path.Base(doc.FileRef)
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": name}))
	http.ServeContent(w, r, name, fi.ModTime(), f)
}

// History handles GET /api/documents/{id}/history.
func (h *DocumentHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.svc.DocumentHistory(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]auditResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toAuditResponse(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

// RequestReplace handles POST /api/documents/{id}/request-replace.
func (h *DocumentHandler) RequestReplace(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.RequestTypeReplace, "Replace request submitted")
}

// RequestDelete handles POST /api/documents/{id}/request-delete.
func (h *DocumentHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, domain.RequestTypeDelete, "Delete request submitted")
}

func (h *DocumentHandler) submit(w http.ResponseWriter, r *http.Request, typ domain.RequestType, message string) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	req, err := h.svc.SubmitRequest(r.Context(), workflow.SubmitRequestInput{
		DocumentID:  id,
		RequestType: typ,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Message: message,
		Request: toPermissionResponse(*req),
	})
}

// toResponses enriches documents with file metadata and their owners.
func (h *DocumentHandler) toResponses(ctx context.Context, docs []domain.Document) ([]documentResponse, error) {
	ownerIDs := make([]uuid.UUID, 0, len(docs))
	for _, d := range docs {
		ownerIDs = append(ownerIDs, d.OwnerID)
	}
	owners, err := dataloader.LoadUsers(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		resp := documentResponse{
			ID:           d.ID.String(),
			Title:        d.Title,
			Description:  d.Description,
			DocumentType: d.DocumentType.String(),
			Status:       d.Status.String(),
			Version:      d.Version,
			FileURL:      h.fileURL(d),
			FileName:     path.Base(d.FileRef),
			CreatedAt:    d.CreatedAt,
		}

		if info, err := h.files.Stat(ctx, d.FileRef); err == nil {
			resp.FileSize = &info.Size
			resp.FileType = &info.MimeType
		} else if !errors.Is(err, domain.ErrNotFound) {
			h.log.WarnContext(ctx, "stat document file",
				slog.String("document_id", d.ID.String()),
				slog.String("error", err.Error()),
			)
		}

		if u, ok := owners[d.OwnerID]; ok {
			resp.CreatedBy = &userRefBrief{ID: u.ID.String(), Username: u.Username, Role: u.Role.String()}
		}

		out = append(out, resp)
	}
	return out, nil
}

// fileURL prefers the storage's public address and falls back to the
// streaming endpoint.
func (h *DocumentHandler) fileURL(d domain.Document) string {
	if u := h.files.URL(d.FileRef); u != "" {
		return u
	}
	return "/api/documents/" + d.ID.String() + "/file"
}

func toAuditResponse(rec domain.AuditRecord) auditResponse {
	resp := auditResponse{
		ID:         rec.ID.String(),
		UserID:     rec.UserID.String(),
		EntityType: rec.EntityType.String(),
		Action:     rec.Action.String(),
		Changes:    rec.Changes,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.EntityID != nil {
		s := rec.EntityID.String()
		resp.EntityID = &s
	}
	return resp
}
