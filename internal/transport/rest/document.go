package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/internal/service/document"
	"github.com/buildline/crm-backend/internal/transport/respond"
)

// multipartMemory is how much of a multipart form is buffered in memory
// before spilling to temporary files.
const multipartMemory = 8 << 20

// multipartOverhead is the allowance for form fields and part headers on top
// of the file itself.
const multipartOverhead = 1 << 20

type documentService interface {
	GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListDocuments(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Document], error)
	Upload(ctx context.Context, input document.UploadInput) (*domain.Document, error)
	Download(ctx context.Context, id uuid.UUID) (*domain.Document, io.ReadCloser, error)
	UpdateDocument(ctx context.Context, input document.UpdateDocumentInput) (*domain.Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}

// DocumentHandler serves /api/documents.
type DocumentHandler struct {
	svc       documentService
	maxUpload int64
	log       *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler. maxUpload bounds the file
// size in bytes.
func NewDocumentHandler(svc documentService, maxUpload int64, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, maxUpload: maxUpload, log: logger.With("handler", "document")}
}

type documentRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	CustomerID  *jsonID  `json:"customerId"`
}

// List handles GET /api/documents.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := listFilter(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	page, err := h.svc.ListDocuments(r.Context(), f)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Page(w, page)
}

// Get handles GET /api/documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	d, err := h.svc.GetDocument(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.OK(w, http.StatusOK, d)
}

// Upload handles POST /api/documents as multipart/form-data with a "file"
// part and optional title, description, category, tags and customerId
// fields. Tags may repeat or be comma separated.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, r, h.log, domain.NewValidationError("file",
				fmt.Sprintf("File exceeds the maximum size of %d MB", h.maxUpload>>20)))
			return
		}
		respond.Error(w, r, h.log, domain.NewValidationError("body", "Invalid multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	input := document.UploadInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Tags:        formTags(r),
	}

	if v := strings.TrimSpace(r.FormValue("customerId")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			respond.Error(w, r, h.log, domain.NewValidationError("customerId", "Invalid customer id"))
			return
		}
		input.CustomerID = &id
	}

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		input.FileName = header.Filename
		input.ContentType = header.Header.Get("Content-Type")
		input.Size = header.Size
		input.Body = file
	case errors.Is(err, http.ErrMissingFile):
		// Reported by the service as a field error.
	default:
		respond.Error(w, r, h.log, domain.NewValidationError("file", "Invalid file upload"))
		return
	}

	d, err := h.svc.Upload(r.Context(), input)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusCreated, d, "Document uploaded successfully")
}

// Download handles GET /api/documents/{id}/download.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	d, body, err := h.svc.Download(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	defer body.Close()

	contentType := d.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", attachment(d.FileName))
	if d.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(d.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		h.log.WarnContext(r.Context(), "document download interrupted",
			slog.String("document_id", id.String()),
			slog.String("error", err.Error()),
		)
	}
}

// Update handles PUT /api/documents/{id}.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	var req documentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	d, err := h.svc.UpdateDocument(r.Context(), document.UpdateDocumentInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		CustomerID:  req.CustomerID.ptr(),
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, d, "Document updated successfully")
}

// Delete handles DELETE /api/documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteDocument(r.Context(), id); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, nil, "Document deleted successfully")
}

func formTags(r *http.Request) []string {
	var tags []string
	for _, v := range r.MultipartForm.Value["tags"] {
		tags = append(tags, strings.Split(v, ",")...)
	}
	return tags
}

// attachment builds a Content-Disposition header for a download.
func attachment(name string) string {
	if name == "" {
		name = "download"
	}
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}
