package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/stock"
)

func itemCongelado(qty int64) entity.StockItem {
	return entity.StockItem{
		ID:           "11111111-2222-3333-4444-555555555555",
		Bucket:       entity.BucketCongelados,
		Name:         "Costilla de res",
		Quantity:     decimal.NewFromInt(qty),
		Unit:         "kg",
		Category:     "carnes",
		MinThreshold: decimal.NewFromInt(10),
		Location:     entity.LocationSedeCentro,
	}
}

// Confirmar la misma cantidad es un no-op: sin asiento y sin cambio.
func TestApplyMovement_DeltaCeroNoEmiteAsiento(t *testing.T) {
	item := itemCongelado(30)
	now := time.Now()

	res, err := stock.ApplyMovement(item, decimal.NewFromInt(30), "user-1", now)
	require.NoError(t, err)

	assert.Nil(t, res.Entry, "delta cero no debe producir asiento")
	assert.True(t, res.Item.Quantity.Equal(decimal.NewFromInt(30)))
}

func TestApplyMovement_CantidadNegativaRechazada(t *testing.T) {
	item := itemCongelado(30)

	_, err := stock.ApplyMovement(item, decimal.NewFromInt(-1), "user-1", time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// delta > 0 → asiento IN con la magnitud del delta.
func TestApplyMovement_Entrada(t *testing.T) {
	item := itemCongelado(10)
	now := time.Now()

	res, err := stock.ApplyMovement(item, decimal.NewFromInt(18), "user-1", now)
	require.NoError(t, err)
	require.NotNil(t, res.Entry)

	assert.Equal(t, entity.MovementTypeIN, res.Entry.Type)
	assert.True(t, res.Entry.Quantity.Equal(decimal.NewFromInt(8)))
	assert.True(t, res.Item.Quantity.Equal(decimal.NewFromInt(18)))
	assert.Equal(t, item.Name, res.Entry.ItemName)
	assert.Equal(t, item.Location, res.Entry.Location)
	assert.Equal(t, "user-1", res.Entry.CreatedBy)
}

// delta < 0 → asiento OUT; la cantidad del asiento siempre es positiva.
func TestApplyMovement_Salida(t *testing.T) {
	item := itemCongelado(30)

	res, err := stock.ApplyMovement(item, decimal.NewFromInt(22), "user-1", time.Now())
	require.NoError(t, err)
	require.NotNil(t, res.Entry)

	assert.Equal(t, entity.MovementTypeOUT, res.Entry.Type)
	assert.True(t, res.Entry.Quantity.Equal(decimal.NewFromInt(8)))
	assert.True(t, res.Entry.Quantity.IsPositive())
	assert.True(t, res.Item.Quantity.Equal(decimal.NewFromInt(22)))
}

// Cantidades fraccionarias (kg) se manejan con decimal exacto.
func TestApplyMovement_Fraccionario(t *testing.T) {
	item := itemCongelado(0)
	item.Quantity = decimal.RequireFromString("2.5")

	res, err := stock.ApplyMovement(item, decimal.RequireFromString("1.25"), "user-1", time.Now())
	require.NoError(t, err)
	require.NotNil(t, res.Entry)

	assert.Equal(t, entity.MovementTypeOUT, res.Entry.Type)
	assert.True(t, res.Entry.Quantity.Equal(decimal.RequireFromString("1.25")))
}

func TestClosingEntry_ConRemanente(t *testing.T) {
	item := itemCongelado(5)

	entry := stock.ClosingEntry(item, "user-1", "retiro de inventario", time.Now())
	require.NotNil(t, entry)

	assert.Equal(t, entity.MovementTypeOUT, entry.Type)
	assert.True(t, entry.Quantity.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "retiro de inventario", entry.Note)
}

func TestClosingEntry_SinRemanente(t *testing.T) {
	item := itemCongelado(0)

	entry := stock.ClosingEntry(item, "user-1", "retiro de inventario", time.Now())
	assert.Nil(t, entry, "cantidad cero no debe producir asiento de cierre")
}
