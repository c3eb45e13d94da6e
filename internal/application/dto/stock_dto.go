package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// AddItemRequest body para POST /api/buckets/:bucket/items.
type AddItemRequest struct {
	Name         string           `json:"name"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit,omitempty"`
	Category     string           `json:"category"`
	MinThreshold *decimal.Decimal `json:"min_threshold,omitempty"`
	Location     string           `json:"location"`
}

// ConfirmQuantityRequest body para PUT /api/buckets/:bucket/items/:id/quantity.
// Quantity es la cantidad absoluta confirmada, no un delta.
type ConfirmQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// UpdateStatusRequest body para PUT /api/buckets/:bucket/items/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"` // en-proceso | listo
}

// TransferRequest body para POST /api/buckets/:bucket/items/:id/transfer
// (y .../return). Quantity es la cantidad a trasladar.
type TransferRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Note     string          `json:"note,omitempty"`
}

// StockItemResponse representación de un item en respuestas.
type StockItemResponse struct {
	ID           string          `json:"id"`
	Bucket       string          `json:"bucket"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	Category     string          `json:"category"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	Location     string          `json:"location"`
	Status       string          `json:"status,omitempty"`
	ThawEstimate string          `json:"thaw_estimate,omitempty"`
	LowStock     bool            `json:"low_stock"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TransferResponse resultado de un traslado: ambos lados ya persistidos.
type TransferResponse struct {
	Source      StockItemResponse `json:"source"`
	Destination StockItemResponse `json:"destination"`
}

// ToStockItemResponse mapea la entidad a su DTO de salida.
func ToStockItemResponse(item *entity.StockItem, lowStock bool) StockItemResponse {
	return StockItemResponse{
		ID:           item.ID,
		Bucket:       item.Bucket,
		Name:         item.Name,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		Category:     item.Category,
		MinThreshold: item.MinThreshold,
		Location:     item.Location,
		Status:       item.Status,
		ThawEstimate: item.ThawEstimate,
		LowStock:     lowStock,
		UpdatedAt:    item.UpdatedAt,
	}
}
