package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a scheduled meeting, optionally with a customer.
type Appointment struct {
	ID           uuid.UUID         `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	CustomerID   *uuid.UUID        `json:"customerId,omitempty"`
	CustomerName string            `json:"customerName,omitempty"`
	Date         time.Time         `json:"date"`
	StartTime    string            `json:"startTime"`
	EndTime      string            `json:"endTime"`
	Location     string            `json:"location"`
	Status       AppointmentStatus `json:"status"`
	Notes        string            `json:"notes"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// IsClockTime reports whether s is a 24h HH:MM time.
func IsClockTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil && len(s) == 5
}
