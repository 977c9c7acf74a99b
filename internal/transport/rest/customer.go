package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/internal/service/customer"
	"github.com/buildline/crm-backend/internal/transport/respond"
)

type customerService interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	ListCustomers(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Customer], error)
	CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, input customer.UpdateCustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

// CustomerHandler serves /api/customers.
type CustomerHandler struct {
	svc customerService
	log *slog.Logger
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc customerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{svc: svc, log: logger.With("handler", "customer")}
}

type customerRequest struct {
	FirstName *string         `json:"firstName"`
	LastName  *string         `json:"lastName"`
	Email     *string         `json:"email"`
	Phone     *string         `json:"phone"`
	Company   *string         `json:"company"`
	Address   *domain.Address `json:"address"`
	Status    *string         `json:"status"`
	Notes     *string         `json:"notes"`
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := listFilter(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	page, err := h.svc.ListCustomers(r.Context(), f)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Page(w, page)
}

// Get handles GET /api/customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	c, err := h.svc.GetCustomer(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.OK(w, http.StatusOK, c)
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	input := customer.CreateCustomerInput{
		FirstName: str(req.FirstName),
		LastName:  str(req.LastName),
		Email:     str(req.Email),
		Phone:     str(req.Phone),
		Company:   str(req.Company),
		Status:    str(req.Status),
		Notes:     str(req.Notes),
	}
	if req.Address != nil {
		input.Address = *req.Address
	}
	c, err := h.svc.CreateCustomer(r.Context(), input)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusCreated, c, "Customer created successfully")
}

// Update handles PUT /api/customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	var req customerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	c, err := h.svc.UpdateCustomer(r.Context(), customer.UpdateCustomerInput{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Address:   req.Address,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, c, "Customer updated successfully")
}

// Delete handles DELETE /api/customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteCustomer(r.Context(), id); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, nil, "Customer deleted successfully")
}
