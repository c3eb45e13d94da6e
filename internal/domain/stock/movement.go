// Package stock contiene el motor de movimientos: funciones puras que, dadas
// el estado actual de un item y una cantidad solicitada, calculan el nuevo
// estado y el asiento de ledger a emitir. La persistencia es del caller.
package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// MovementResult es el resultado de aplicar un movimiento sobre un item.
// Entry es nil cuando el delta fue cero (no-op: confirmar una cantidad sin
// cambios no debe ensuciar el ledger).
type MovementResult struct {
	Item  entity.StockItem
	Entry *entity.LedgerEntry
}

// ApplyMovement calcula el resultado de fijar la cantidad de un item en
// requested. delta = requested - actual: positivo emite un asiento IN,
// negativo un asiento OUT con la magnitud del delta, cero no emite nada.
// Falla con ErrInvalidInput si requested es negativa.
func ApplyMovement(item entity.StockItem, requested decimal.Decimal, actor string, now time.Time) (MovementResult, error) {
	if requested.IsNegative() {
		return MovementResult{}, domain.ErrInvalidInput
	}
	delta := requested.Sub(item.Quantity)
	if delta.IsZero() {
		return MovementResult{Item: item}, nil
	}

	movType := entity.MovementTypeIN
	if delta.IsNegative() {
		movType = entity.MovementTypeOUT
	}
	item.Quantity = requested
	item.UpdatedAt = now

	return MovementResult{
		Item: item,
		Entry: &entity.LedgerEntry{
			Bucket:    item.Bucket,
			ItemID:    item.ID,
			ItemName:  item.Name,
			Quantity:  delta.Abs(),
			Unit:      item.Unit,
			Category:  item.Category,
			Type:      movType,
			Location:  item.Location,
			CreatedBy: actor,
			CreatedAt: now,
		},
	}, nil
}

// ClosingEntry construye el asiento de cierre al retirar un item con cantidad
// remanente. Devuelve nil si la cantidad es cero (no hubo movimiento).
func ClosingEntry(item entity.StockItem, actor, note string, now time.Time) *entity.LedgerEntry {
	if item.Quantity.IsZero() {
		return nil
	}
	return &entity.LedgerEntry{
		Bucket:    item.Bucket,
		ItemID:    item.ID,
		ItemName:  item.Name,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		Category:  item.Category,
		Type:      entity.MovementTypeOUT,
		Note:      note,
		Location:  item.Location,
		CreatedBy: actor,
		CreatedAt: now,
	}
}
