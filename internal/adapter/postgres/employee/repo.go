// Package employee implements the Employee repository using PostgreSQL.
package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/buildline/crm-backend/internal/adapter/postgres"
	"github.com/buildline/crm-backend/internal/domain"
)

// Repo provides employee persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new employee repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "first_name", "last_name", "email", "phone", "position", "department",
	"status", "hire_date", "salary", "skills", "created_at", "updated_at",
}

var listSpec = postgres.ListSpec{
	From:           "employees",
	Columns:        columns,
	SearchColumns:  []string{"first_name", "last_name", "email", "position"},
	StatusColumn:   "status",
	CategoryColumn: "department",
	DateColumn:     "hire_date",
	SortColumns: map[string]string{
		"createdAt":  "created_at",
		"firstName":  "first_name",
		"lastName":   "last_name",
		"department": "department",
		"status":     "status",
		"hireDate":   "hire_date",
		"salary":     "salary",
	},
	DefaultSort:  "createdAt",
	DefaultOrder: domain.SortDesc,
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const selectColumns = `id, first_name, last_name, email, phone, position, department,
    status, hire_date, salary, skills, created_at, updated_at`

const getByIDSQL = `SELECT ` + selectColumns + ` FROM employees WHERE id = $1`

const emailTakenSQL = `SELECT EXISTS(SELECT 1 FROM employees WHERE lower(email) = lower($1) AND id <> $2)`

const insertSQL = `
INSERT INTO employees (
    id, first_name, last_name, email, phone, position, department, status,
    hire_date, salary, skills, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
RETURNING ` + selectColumns

const updateSQL = `
UPDATE employees SET
    first_name = $2, last_name = $3, email = $4, phone = $5, position = $6,
    department = $7, status = $8, hire_date = $9, salary = $10, skills = $11,
    updated_at = $12
WHERE id = $1
RETURNING ` + selectColumns

const deleteSQL = `DELETE FROM employees WHERE id = $1`

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// GetByID returns an employee by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	e, err := scanEmployee(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "employee", id)
	}
	return &e, nil
}

// List returns one page of employees. Category filters by department.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Employee], error) {
	page, err := postgres.List(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, f, scanEmployee)
	if err != nil {
		return domain.Page[domain.Employee]{}, fmt.Errorf("list employees: %w", err)
	}
	return page, nil
}

// ListInRange returns up to limit employees hired within rng.
func (r *Repo) ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Employee, error) {
	items, err := postgres.All(ctx, postgres.QuerierFromCtx(ctx, r.db), listSpec, domain.ListFilter{Range: rng}, limit, scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("list employees in range: %w", err)
	}
	return items, nil
}

// EmailTaken reports whether another employee (not excludeID) uses email.
func (r *Repo) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, emailTakenSQL, email, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("check employee email: %w", err)
	}
	return taken, nil
}

// Count returns the total number of employees.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.CountAll(ctx, postgres.QuerierFromCtx(ctx, r.db), "employees")
}

// CountByDepartment groups employees by department.
func (r *Repo) CountByDepartment(ctx context.Context) ([]postgres.Bucket, error) {
	return postgres.CountBy(ctx, postgres.QuerierFromCtx(ctx, r.db), "employees", "department")
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// Create inserts a new employee.
func (r *Repo) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		e.ID, e.FirstName, e.LastName, e.Email, e.Phone, e.Position, e.Department, e.Status,
		e.HireDate, e.Salary, skillsOrEmpty(e.Skills), e.CreatedAt,
	)
	created, err := scanEmployee(row)
	if err != nil {
		return nil, postgres.MapError(err, "employee", e.ID)
	}
	return &created, nil
}

// Update overwrites every mutable column of the employee.
func (r *Repo) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL,
		e.ID, e.FirstName, e.LastName, e.Email, e.Phone, e.Position, e.Department, e.Status,
		e.HireDate, e.Salary, skillsOrEmpty(e.Skills), e.UpdatedAt,
	)
	updated, err := scanEmployee(row)
	if err != nil {
		return nil, postgres.MapError(err, "employee", e.ID)
	}
	return &updated, nil
}

// Delete removes an employee. Assets assigned to them become unassigned.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "employee", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func skillsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Position, &e.Department,
		&e.Status, &e.HireDate, &e.Salary, &e.Skills, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}
