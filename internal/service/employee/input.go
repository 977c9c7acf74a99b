package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
)

// CreateEmployeeInput holds the parameters for adding an employee.
type CreateEmployeeInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Position   string
	Department string
	Status     string
	HireDate   *time.Time
	Salary     *decimal.Decimal
	Skills     []string
}

func (i *CreateEmployeeInput) normalize() {
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
	i.Email = domain.NormalizeEmail(i.Email)
	i.Phone = strings.TrimSpace(i.Phone)
	i.Position = strings.TrimSpace(i.Position)
	i.Department = strings.TrimSpace(i.Department)
	i.Status = strings.TrimSpace(i.Status)
	i.Skills = cleanSkills(i.Skills)
}

// Validate checks all fields and collects all errors.
func (i CreateEmployeeInput) Validate() error {
	var errs []domain.FieldError

	if i.FirstName == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "First name is required"})
	}
	if i.LastName == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "Last name is required"})
	}
	errs = append(errs, validateEmail(i.Email)...)
	if i.Position == "" {
		errs = append(errs, domain.FieldError{Field: "position", Message: "Position is required"})
	}
	if i.Department == "" {
		errs = append(errs, domain.FieldError{Field: "department", Message: "Department is required"})
	}
	errs = append(errs, validateOptional(&i.Department, &i.Status, i.Salary)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateEmployeeInput holds a partial update. Nil fields are left unchanged;
// a non-nil Skills replaces the whole list.
type UpdateEmployeeInput struct {
	ID         uuid.UUID
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Position   *string
	Department *string
	Status     *string
	HireDate   *time.Time
	Salary     *decimal.Decimal
	Skills     []string
}

func (i *UpdateEmployeeInput) normalize() {
	for _, p := range []*string{i.FirstName, i.LastName, i.Phone, i.Position, i.Department, i.Status} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	if i.Email != nil {
		*i.Email = domain.NormalizeEmail(*i.Email)
	}
	if i.Skills != nil {
		i.Skills = cleanSkills(i.Skills)
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateEmployeeInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.FirstName != nil && *i.FirstName == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "First name is required"})
	}
	if i.LastName != nil && *i.LastName == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "Last name is required"})
	}
	if i.Email != nil {
		errs = append(errs, validateEmail(*i.Email)...)
	}
	if i.Position != nil && *i.Position == "" {
		errs = append(errs, domain.FieldError{Field: "position", Message: "Position is required"})
	}
	errs = append(errs, validateOptional(i.Department, i.Status, i.Salary)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "Email is required"}}
	}
	if !domain.IsEmail(email) {
		return []domain.FieldError{{Field: "email", Message: "Please enter a valid email"}}
	}
	return nil
}

func validateOptional(department, status *string, salary *decimal.Decimal) []domain.FieldError {
	var errs []domain.FieldError
	if department != nil && *department != "" && !domain.Department(*department).IsValid() {
		errs = append(errs, domain.FieldError{Field: "department", Message: "Invalid department"})
	}
	if status != nil && *status != "" && !domain.EmployeeStatus(*status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "Invalid employee status"})
	}
	if salary != nil && salary.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "salary", Message: "Salary cannot be negative"})
	}
	return errs
}

// cleanSkills trims entries and drops blanks and duplicates, keeping order.
func cleanSkills(skills []string) []string {
	trimmed := lo.Map(skills, func(s string, _ int) string { return strings.TrimSpace(s) })
	return lo.Uniq(lo.Compact(trimmed))
}
