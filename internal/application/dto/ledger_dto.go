package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// LedgerEntryResponse representación de un asiento del historial.
type LedgerEntryResponse struct {
	ID        string          `json:"id"`
	Bucket    string          `json:"bucket"`
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Quantity  decimal.Decimal `json:"quantity"` // magnitud, siempre positiva
	Unit      string          `json:"unit"`
	Category  string          `json:"category"`
	Type      string          `json:"type"` // IN, OUT, RETURN
	Note      string          `json:"note,omitempty"`
	Location  string          `json:"location"`
	CreatedBy string          `json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToLedgerEntryResponse mapea la entidad a su DTO de salida.
func ToLedgerEntryResponse(e *entity.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:        e.ID,
		Bucket:    e.Bucket,
		ItemID:    e.ItemID,
		ItemName:  e.ItemName,
		Quantity:  e.Quantity,
		Unit:      e.Unit,
		Category:  e.Category,
		Type:      e.Type,
		Note:      e.Note,
		Location:  e.Location,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt,
	}
}
