package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/internal/service/appointment"
	"github.com/buildline/crm-backend/internal/transport/respond"
)

type appointmentService interface {
	GetAppointment(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListAppointments(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Appointment], error)
	CreateAppointment(ctx context.Context, input appointment.CreateAppointmentInput) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, input appointment.UpdateAppointmentInput) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

// AppointmentHandler serves /api/appointments.
type AppointmentHandler struct {
	svc appointmentService
	log *slog.Logger
}

// NewAppointmentHandler creates an AppointmentHandler.
func NewAppointmentHandler(svc appointmentService, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, log: logger.With("handler", "appointment")}
}

type appointmentRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	CustomerID  *jsonID   `json:"customerId"`
	Date        *jsonDate `json:"date"`
	StartTime   *string   `json:"startTime"`
	EndTime     *string   `json:"endTime"`
	Location    *string   `json:"location"`
	Status      *string   `json:"status"`
	Notes       *string   `json:"notes"`
}

// List handles GET /api/appointments.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := listFilter(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	page, err := h.svc.ListAppointments(r.Context(), f)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Page(w, page)
}

// Get handles GET /api/appointments/{id}.
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	a, err := h.svc.GetAppointment(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.OK(w, http.StatusOK, a)
}

// Create handles POST /api/appointments.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	a, err := h.svc.CreateAppointment(r.Context(), appointment.CreateAppointmentInput{
		Title:       str(req.Title),
		Description: str(req.Description),
		CustomerID:  req.CustomerID.ptr(),
		Date:        req.Date.ptr(),
		StartTime:   str(req.StartTime),
		EndTime:     str(req.EndTime),
		Location:    str(req.Location),
		Status:      str(req.Status),
		Notes:       str(req.Notes),
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusCreated, a, "Appointment created successfully")
}

// Update handles PUT /api/appointments/{id}.
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	var req appointmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	a, err := h.svc.UpdateAppointment(r.Context(), appointment.UpdateAppointmentInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		CustomerID:  req.CustomerID.ptr(),
		Date:        req.Date.ptr(),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, a, "Appointment updated successfully")
}

// Delete handles DELETE /api/appointments/{id}.
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteAppointment(r.Context(), id); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, nil, "Appointment deleted successfully")
}
