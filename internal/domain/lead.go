package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxLeadNotesLength caps free-form notes on a lead.
const MaxLeadNotesLength = 1000

// Lead is a prospective customer tracked through the sales funnel.
type Lead struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Company             string          `json:"company"`
	Source              LeadSource      `json:"source"`
	Status              LeadStatus      `json:"status"`
	EstimatedValue      decimal.Decimal `json:"estimatedValue"`
	Notes               string          `json:"notes"`
	AssignedTo          *uuid.UUID      `json:"assignedTo,omitempty"`
	LastContactDate     *time.Time      `json:"lastContactDate,omitempty"`
	NextFollowUp        *time.Time      `json:"nextFollowUp,omitempty"`
	ConvertedCustomerID *uuid.UUID      `json:"convertedCustomerId,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// SetStatus moves the lead to the given status. Entering "contacted" from any
// other status stamps LastContactDate; staying in "contacted" leaves it alone.
// Returns true when the status actually changed.
func (l *Lead) SetStatus(to LeadStatus, now time.Time) bool {
	if l.Status == to {
		return false
	}
	if to == LeadStatusContacted {
		t := now
		l.LastContactDate = &t
	}
	l.Status = to
	return true
}

// IsConverted reports whether a customer was already created from this lead.
func (l *Lead) IsConverted() bool { return l.ConvertedCustomerID != nil }

// TransitionPolicy decides whether a lead may move between two statuses.
type TransitionPolicy interface {
	Check(from, to LeadStatus) error
}

// PermissivePolicy allows every move between valid statuses.
type PermissivePolicy struct{}

func (PermissivePolicy) Check(_, _ LeadStatus) error { return nil }

// StrictPolicy only allows forward funnel moves. Terminal statuses have no exits.
type StrictPolicy struct{}

var strictTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusNew:       {LeadStatusContacted, LeadStatusQualified, LeadStatusLost},
	LeadStatusContacted: {LeadStatusQualified, LeadStatusLost},
}

func (StrictPolicy) Check(from, to LeadStatus) error {
	if from == to {
		return nil
	}
	for _, allowed := range strictTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &TransitionError{From: from, To: to}
}

// Transition policy names accepted in configuration.
const (
	TransitionPolicyPermissive = "permissive"
	TransitionPolicyStrict     = "strict"
)

// PolicyByName returns the policy registered under name, defaulting to permissive.
func PolicyByName(name string) TransitionPolicy {
	if name == TransitionPolicyStrict {
		return StrictPolicy{}
	}
	return PermissivePolicy{}
}

// LeadStatusSummary aggregates leads sharing one status.
type LeadStatusSummary struct {
	Status     LeadStatus      `json:"_id"`
	Count      int             `json:"count"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// LeadStats is the payload of the lead stats endpoint.
type LeadStats struct {
	TotalLeads      int                 `json:"totalLeads"`
	RecentLeads     int                 `json:"recentLeads"`
	StatusBreakdown []LeadStatusSummary `json:"statusBreakdown"`
}

// ConversionKind tags the outcome of converting a lead.
type ConversionKind string

const (
	ConversionConverted  ConversionKind = "converted"
	ConversionStatusOnly ConversionKind = "status_only"
)

// Conversion mode names accepted in configuration.
const (
	ConversionModeCreateCustomer = "create_customer"
	ConversionModeStatusOnly     = "status_only"
)

// ConversionOutcome is the result of converting a lead. CustomerID is set
// only when Kind is ConversionConverted.
type ConversionOutcome struct {
	Kind       ConversionKind `json:"kind"`
	CustomerID *uuid.UUID     `json:"customerId,omitempty"`
	Lead       Lead           `json:"lead"`
}
