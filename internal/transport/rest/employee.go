package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/internal/service/employee"
	"github.com/buildline/crm-backend/internal/transport/respond"
)

type employeeService interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	ListEmployees(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Employee], error)
	CreateEmployee(ctx context.Context, input employee.CreateEmployeeInput) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, input employee.UpdateEmployeeInput) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

// EmployeeHandler serves /api/employees.
type EmployeeHandler struct {
	svc employeeService
	log *slog.Logger
}

// NewEmployeeHandler creates an EmployeeHandler.
func NewEmployeeHandler(svc employeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, log: logger.With("handler", "employee")}
}

type employeeRequest struct {
	FirstName  *string          `json:"firstName"`
	LastName   *string          `json:"lastName"`
	Email      *string          `json:"email"`
	Phone      *string          `json:"phone"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	Status     *string          `json:"status"`
	HireDate   *jsonDate        `json:"hireDate"`
	Salary     *decimal.Decimal `json:"salary"`
	Skills     []string         `json:"skills"`
}

// List handles GET /api/employees.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := listFilter(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	page, err := h.svc.ListEmployees(r.Context(), f)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Page(w, page)
}

// Get handles GET /api/employees/{id}.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	e, err := h.svc.GetEmployee(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.OK(w, http.StatusOK, e)
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	e, err := h.svc.CreateEmployee(r.Context(), employee.CreateEmployeeInput{
		FirstName:  str(req.FirstName),
		LastName:   str(req.LastName),
		Email:      str(req.Email),
		Phone:      str(req.Phone),
		Position:   str(req.Position),
		Department: str(req.Department),
		Status:     str(req.Status),
		HireDate:   req.HireDate.ptr(),
		Salary:     req.Salary,
		Skills:     req.Skills,
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusCreated, e, "Employee created successfully")
}

// Update handles PUT /api/employees/{id}.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	var req employeeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	e, err := h.svc.UpdateEmployee(r.Context(), employee.UpdateEmployeeInput{
		ID:         id,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		Status:     req.Status,
		HireDate:   req.HireDate.ptr(),
		Salary:     req.Salary,
		Skills:     req.Skills,
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, e, "Employee updated successfully")
}

// Delete handles DELETE /api/employees/{id}.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteEmployee(r.Context(), id); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, nil, "Employee deleted successfully")
}
