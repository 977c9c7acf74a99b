package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee is a member of staff.
type Employee struct {
	ID         uuid.UUID       `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Department Department      `json:"department"`
	Status     EmployeeStatus  `json:"status"`
	HireDate   *time.Time      `json:"hireDate,omitempty"`
	Salary     decimal.Decimal `json:"salary"`
	Skills     []string        `json:"skills"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
