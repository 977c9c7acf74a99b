package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is the postal address of a customer.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Line joins non-empty street, city and state parts.
func (a Address) Line() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.Street, a.City, a.State} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// IsZero reports whether no address part is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Customer is a client of the company. Older records only carry Name.
type Customer struct {
	ID        uuid.UUID      `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Name      string         `json:"name,omitempty"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Company   string         `json:"company"`
	Address   Address        `json:"address"`
	Status    CustomerStatus `json:"status"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// DisplayName prefers first and last name and falls back to the legacy name.
func (c Customer) DisplayName() string {
	full := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if full != "" {
		return full
	}
	return strings.TrimSpace(c.Name)
}

// SplitName splits a full name at the first space into first and last name.
func SplitName(full string) (first, last string) {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
