package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset is a piece of company property such as a vehicle or tool.
type Asset struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Category       AssetCategory   `json:"category"`
	SerialNumber   *string         `json:"serialNumber,omitempty"`
	Status         AssetStatus     `json:"status"`
	Location       string          `json:"location"`
	PurchaseDate   *time.Time      `json:"purchaseDate,omitempty"`
	Value          decimal.Decimal `json:"value"`
	AssignedTo     *uuid.UUID      `json:"assignedTo,omitempty"`
	AssignedToName string          `json:"assignedToName,omitempty"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
