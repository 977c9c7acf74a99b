package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/internal/service/asset"
	"github.com/buildline/crm-backend/internal/transport/respond"
)

type assetService interface {
	GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	ListAssets(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Asset], error)
	CreateAsset(ctx context.Context, input asset.CreateAssetInput) (*domain.Asset, error)
	UpdateAsset(ctx context.Context, input asset.UpdateAssetInput) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}

// AssetHandler serves /api/assets.
type AssetHandler struct {
	svc assetService
	log *slog.Logger
}

// NewAssetHandler creates an AssetHandler.
func NewAssetHandler(svc assetService, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{svc: svc, log: logger.With("handler", "asset")}
}

type assetRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	SerialNumber *string          `json:"serialNumber"`
	Status       *string          `json:"status"`
	Location     *string          `json:"location"`
	PurchaseDate *jsonDate        `json:"purchaseDate"`
	Value        *decimal.Decimal `json:"value"`
	AssignedTo   *jsonID          `json:"assignedTo"`
	Notes        *string          `json:"notes"`
}

// List handles GET /api/assets.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := listFilter(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	page, err := h.svc.ListAssets(r.Context(), f)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Page(w, page)
}

// Get handles GET /api/assets/{id}.
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	a, err := h.svc.GetAsset(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.OK(w, http.StatusOK, a)
}

// Create handles POST /api/assets.
func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	a, err := h.svc.CreateAsset(r.Context(), asset.CreateAssetInput{
		Name:         str(req.Name),
		Category:     str(req.Category),
		SerialNumber: str(req.SerialNumber),
		Status:       str(req.Status),
		Location:     str(req.Location),
		PurchaseDate: req.PurchaseDate.ptr(),
		Value:        req.Value,
		AssignedTo:   req.AssignedTo.ptr(),
		Notes:        str(req.Notes),
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusCreated, a, "Asset created successfully")
}

// Update handles PUT /api/assets/{id}.
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	var req assetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	a, err := h.svc.UpdateAsset(r.Context(), asset.UpdateAssetInput{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		SerialNumber: req.SerialNumber,
		Status:       req.Status,
		Location:     req.Location,
		PurchaseDate: req.PurchaseDate.ptr(),
		Value:        req.Value,
		AssignedTo:   req.AssignedTo.ptr(),
		Notes:        req.Notes,
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, a, "Asset updated successfully")
}

// Delete handles DELETE /api/assets/{id}.
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteAsset(r.Context(), id); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, http.StatusOK, nil, "Asset deleted successfully")
}
