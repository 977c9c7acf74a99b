package customer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

// CreateCustomerInput holds the parameters for creating a customer.
type CreateCustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Address   domain.Address
	Status    string
	Notes     string
}

func (i *CreateCustomerInput) normalize() {
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
	i.Email = domain.NormalizeEmail(i.Email)
	i.Phone = strings.TrimSpace(i.Phone)
	i.Company = strings.TrimSpace(i.Company)
	i.Address = trimAddress(i.Address)
	i.Status = strings.TrimSpace(i.Status)
	i.Notes = strings.TrimSpace(i.Notes)
}

// Validate checks all fields and collects all errors.
func (i CreateCustomerInput) Validate() error {
	var errs []domain.FieldError

	if i.FirstName == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "First name is required"})
	}
	if i.LastName == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "Last name is required"})
	}
	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validateStatus(i.Status)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCustomerInput holds a partial update. Nil fields are left unchanged.
type UpdateCustomerInput struct {
	ID        uuid.UUID
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Company   *string
	Address   *domain.Address
	Status    *string
	Notes     *string
}

func (i *UpdateCustomerInput) normalize() {
	for _, p := range []*string{i.FirstName, i.LastName, i.Phone, i.Company, i.Status, i.Notes} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	if i.Email != nil {
		*i.Email = domain.NormalizeEmail(*i.Email)
	}
	if i.Address != nil {
		a := trimAddress(*i.Address)
		i.Address = &a
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateCustomerInput) Validate() error {
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
	if i.Status != nil {
		errs = append(errs, validateStatus(*i.Status)...)
	}

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

func validateStatus(status string) []domain.FieldError {
	if status != "" && !domain.CustomerStatus(status).IsValid() {
		return []domain.FieldError{{Field: "status", Message: "Invalid customer status"}}
	}
	return nil
}

func trimAddress(a domain.Address) domain.Address {
	return domain.Address{
		Street:  strings.TrimSpace(a.Street),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		ZipCode: strings.TrimSpace(a.ZipCode),
	}
}
