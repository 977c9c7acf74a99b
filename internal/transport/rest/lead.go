package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/internal/service/lead"
	"github.com/buildline/crm-backend/internal/transport/respond"
)

type leadService interface {
	GetLead(ctx context.Context, id uuid.UUID) (*domain.Lead, error)
	ListLeads(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Lead], error)
	LeadsByStatus(ctx context.Context, status string) ([]domain.Lead, error)
	Stats(ctx context.Context) (*domain.LeadStats, error)
	History(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error)
	CreateLead(ctx context.Context, input lead.CreateLeadInput) (*domain.Lead, error)
	UpdateLead(ctx context.Context, input lead.UpdateLeadInput) (*domain.Lead, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Lead, error)
	ConvertLead(ctx context.Context, id uuid.UUID) (*domain.ConversionOutcome, error)
	DeleteLead(ctx context.Context, id uuid.UUID) error
}

// LeadHandler serves /api/leads.
type LeadHandler struct {
	svc leadService
	log *slog.Logger
}

// NewLeadHandler creates a LeadHandler.
func NewLeadHandler(svc leadService, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{svc: svc, log: logger.With("handler", "lead")}
}

// leadRequest is the body of create and update. Only these fields can be
// written through the API.
type leadRequest struct {
	Name           *string          `json:"name"`
	Email          *string          `json:"email"`
	Phone          *string          `json:"phone"`
	Company        *string          `json:"company"`
	Source         *string          `json:"source"`
	Status         *string          `json:"status"`
	EstimatedValue *decimal.Decimal `json:"estimatedValue"`
	Notes          *string          `json:"notes"`
	AssignedTo     *jsonID          `json:"assignedTo"`
	NextFollowUp   *jsonDate        `json:"nextFollowUp"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/leads.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := listFilter(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	page, err := h.svc.ListLeads(r.Context(), f)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Page(w, page)
}

// Stats handles GET /api/leads/stats.
func (h *LeadHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.OK(w, http.StatusOK, stats)
}

// ByStatus handles GET /api/leads/status/{status}.
func (h *LeadHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	leads, err := h.svc.LeadsByStatus(r.Context(), r.PathValue("status"))
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	respond.OK(w, http.StatusOK, leads)
}

// Get handles GET /api/leads/{id}.
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	l, err := h.svc.GetLead(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.OK(w, http.StatusOK, l)
}

// History handles GET /api/leads/{id}/history.
func (h *LeadHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	records, err := h.svc.History(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	if records == nil {
		records = []domain.AuditRecord{}
	}
	respond.OK(w, http.StatusOK, records)
}

// Create handles POST /api/leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	l, err := h.svc.CreateLead(r.Context(), lead.CreateLeadInput{
		Name:           str(req.Name),
		Email:          str(req.Email),
		Phone:          str(req.Phone),
		Company:        str(req.Company),
		Source:         str(req.Source),
		Status:         str(req.Status),
		EstimatedValue: req.EstimatedValue,
		Notes:          str(req.Notes),
		AssignedTo:     req.AssignedTo.ptr(),
		NextFollowUp:   req.NextFollowUp.ptr(),
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusCreated, l, "Lead created successfully")
}

// Update handles PUT /api/leads/{id}.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	var req leadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	l, err := h.svc.UpdateLead(r.Context(), lead.UpdateLeadInput{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Company:        req.Company,
		Source:         req.Source,
		Status:         req.Status,
		EstimatedValue: req.EstimatedValue,
		Notes:          req.Notes,
		AssignedTo:     req.AssignedTo.ptr(),
		NextFollowUp:   req.NextFollowUp.ptr(),
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, l, "Lead updated successfully")
}

// UpdateStatus handles PATCH /api/leads/{id}/status.
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	l, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, l, "Lead status updated successfully")
}

// Convert handles POST /api/leads/{id}/convert.
func (h *LeadHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	outcome, err := h.svc.ConvertLead(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	msg := "Lead converted to customer successfully"
	if outcome.Kind == domain.ConversionStatusOnly {
		msg = "Lead marked as qualified"
	}
	respond.Message(w, http.StatusOK, outcome, msg)
}

// Delete handles DELETE /api/leads/{id}.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteLead(r.Context(), id); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, nil, "Lead deleted successfully")
}
