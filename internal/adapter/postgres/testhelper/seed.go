package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user with role "user" and a dummy password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuuO1l3b0y6Kj5Xh7gq4yBv2m3W7j0aC6e",
		Role:         domain.UserRoleUser,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedLead creates a lead with status "new" and the given estimated value.
func SeedLead(t *testing.T, pool *pgxpool.Pool, value int64) domain.Lead {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	lead := domain.Lead{
		ID:             uuid.New(),
		Name:           "Lead " + suffix,
		Email:          "lead-" + suffix + "@example.com",
		Phone:          "555-0100",
		Company:        "Company " + suffix,
		Source:         domain.LeadSourceWebsite,
		Status:         domain.LeadStatusNew,
		EstimatedValue: decimal.NewFromInt(value),
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO leads (id, name, email, phone, company, source, status, estimated_value, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Company, lead.Source, lead.Status, lead.EstimatedValue, lead.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLead: %v", err)
	}
	return lead
}

// SeedCustomer creates an active customer with a full address.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) domain.Customer {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	c := domain.Customer{
		ID:        uuid.New(),
		FirstName: "Cust",
		LastName:  suffix,
		Email:     "customer-" + suffix + "@example.com",
		Phone:     "555-0101",
		Company:   "Builders " + suffix,
		Address:   domain.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701"},
		Status:    domain.CustomerStatusActive,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO customers (id, first_name, last_name, email, phone, company, address, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Company, c.Address, c.Status, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer: %v", err)
	}
	return c
}

// SeedEmployee creates an active field employee.
func SeedEmployee(t *testing.T, pool *pgxpool.Pool) domain.Employee {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	e := domain.Employee{
		ID:         uuid.New(),
		FirstName:  "Emp",
		LastName:   suffix,
		Email:      "employee-" + suffix + "@example.com",
		Position:   "Foreman",
		Department: domain.DepartmentField,
		Status:     domain.EmployeeStatusActive,
		Salary:     decimal.NewFromInt(52000),
		Skills:     []string{"framing", "roofing"},
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO employees (id, first_name, last_name, email, position, department, status, salary, skills, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		e.ID, e.FirstName, e.LastName, e.Email, e.Position, e.Department, e.Status, e.Salary, e.Skills, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEmployee: %v", err)
	}
	return e
}
