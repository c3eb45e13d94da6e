package stock_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/Despensa-api/internal/application/stock"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	domstock "github.com/jhoicas/Despensa-api/internal/domain/stock"
)

func newTransferUC(s *memStore) *appstock.TransferUseCase {
	return appstock.NewTransferUseCase(&memTxRunner{s: s}, nil, testLogger())
}

// totalQuantity suma las cantidades de un item por nombre en ambas bodegas.
func totalQuantity(s *memStore, name string) decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		if it.Name == name {
			total = total.Add(it.Quantity)
		}
	}
	return total
}

// Caso creación: no existe el item en destino → se crea con la cantidad
// trasladada y el total entre bodegas se conserva.
func TestTransfer_CreaEnDestinoYConserva(t *testing.T) {
	s := newMemStore()
	uc := newTransferUC(s)
	src := seedItem(s, entity.BucketCongelados, "Costilla de res", "carnes", 30)

	res, err := uc.Transfer(context.Background(), appstock.TransferInput{
		Bucket:   entity.BucketCongelados,
		ItemID:   src.ID,
		Quantity: decimal.NewFromInt(4),
		Note:     "para servicio del viernes",
		UserID:   "user-1",
	})
	require.NoError(t, err)

	assert.True(t, res.Source.Quantity.Equal(decimal.NewFromInt(26)))
	assert.Equal(t, entity.BucketDescongelando, res.Destination.Bucket)
	assert.True(t, res.Destination.Quantity.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, entity.StatusEnProceso, res.Destination.Status)
	assert.Equal(t, domstock.ThawMedium, res.Destination.ThawEstimate, "4 kg cae en el corte medio")
	assert.True(t, totalQuantity(s, "Costilla de res").Equal(decimal.NewFromInt(30)), "conservación del total")

	// Dos asientos: OUT en origen, IN en destino, ambos por la magnitud trasladada
	require.Len(t, s.entries, 2)
	assert.Equal(t, entity.MovementTypeOUT, s.entries[0].Type)
	assert.Equal(t, entity.BucketCongelados, s.entries[0].Bucket)
	assert.True(t, s.entries[0].Quantity.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, entity.MovementTypeIN, s.entries[1].Type)
	assert.Equal(t, entity.BucketDescongelando, s.entries[1].Bucket)
	assert.True(t, s.entries[1].Quantity.Equal(decimal.NewFromInt(4)))
}

// Caso merge: mismo nombre y categoría ya presentes en destino → se
// incrementa en lugar de duplicar la fila.
func TestTransfer_MergeEnDestino(t *testing.T) {
	s := newMemStore()
	uc := newTransferUC(s)
	src := seedItem(s, entity.BucketCongelados, "Pechuga", "pollo", 10)
	dst := seedItem(s, entity.BucketDescongelando, "Pechuga", "pollo", 2)

	res, err := uc.Transfer(context.Background(), appstock.TransferInput{
		Bucket:   entity.BucketCongelados,
		ItemID:   src.ID,
		Quantity: decimal.NewFromInt(6),
		UserID:   "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, dst.ID, res.Destination.ID, "merge sobre la fila existente, sin duplicado")
	assert.True(t, res.Destination.Quantity.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, domstock.ThawLong, res.Destination.ThawEstimate, "estimado recalculado sobre lo trasladado")
	assert.True(t, totalQuantity(s, "Pechuga").Equal(decimal.NewFromInt(12)))

	// Solo existen las dos filas originales
	assert.Len(t, s.items, 2)
}

// Precondición: trasladar más de lo disponible falla sin tocar ninguna bodega.
func TestTransfer_InsuficienteNoMutaNada(t *testing.T) {
	s := newMemStore()
	uc := newTransferUC(s)
	src := seedItem(s, entity.BucketCongelados, "Salmón", "pescado", 3)

	_, err := uc.Transfer(context.Background(), appstock.TransferInput{
		Bucket:   entity.BucketCongelados,
		ItemID:   src.ID,
		Quantity: decimal.NewFromInt(5),
		UserID:   "user-1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, s.items[key(entity.BucketCongelados, src.ID)].Quantity.Equal(decimal.NewFromInt(3)))
	assert.Len(t, s.items, 1, "no debe crearse nada en destino")
	assert.Empty(t, s.entries, "un traslado rechazado no escribe en el ledger")
}

func TestTransfer_CantidadNoPositiva(t *testing.T) {
	s := newMemStore()
	uc := newTransferUC(s)
	src := seedItem(s, entity.BucketCongelados, "Salmón", "pescado", 3)

	_, err := uc.Transfer(context.Background(), appstock.TransferInput{
		Bucket:   entity.BucketCongelados,
		ItemID:   src.ID,
		Quantity: decimal.Zero,
		UserID:   "user-1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransfer_BodegaSinDestino(t *testing.T) {
	s := newMemStore()
	uc := newTransferUC(s)
	src := seedItem(s, entity.BucketSecos, "Arroz", "granos", 8)

	_, err := uc.Transfer(context.Background(), appstock.TransferInput{
		Bucket:   entity.BucketSecos,
		ItemID:   src.ID,
		Quantity: decimal.NewFromInt(1),
		UserID:   "user-1",
	})
	require.ErrorIs(t, err, domain.ErrTransferNotAllowed)
}

func TestTransfer_ItemInexistente(t *testing.T) {
	s := newMemStore()
	uc := newTransferUC(s)

	_, err := uc.Transfer(context.Background(), appstock.TransferInput{
		Bucket:   entity.BucketCongelados,
		ItemID:   uuid.New().String(),
		Quantity: decimal.NewFromInt(1),
		UserID:   "user-1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Retorno al origen: misma forma que el traslado, con el lado saliente
// tipado RETURN.
func TestReturnToSource_AsientoRETURN(t *testing.T) {
	s := newMemStore()
	uc := newTransferUC(s)
	seedItem(s, entity.BucketCongelados, "Costilla de res", "carnes", 20)
	thawed := seedItem(s, entity.BucketDescongelando, "Costilla de res", "carnes", 5)

	res, err := uc.ReturnToSource(context.Background(), appstock.TransferInput{
		Bucket:   entity.BucketDescongelando,
		ItemID:   thawed.ID,
		Quantity: decimal.NewFromInt(2),
		Note:     "no se usó en el servicio",
		UserID:   "user-1",
	})
	require.NoError(t, err)

	assert.True(t, res.Source.Quantity.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, entity.BucketCongelados, res.Destination.Bucket)
	assert.True(t, res.Destination.Quantity.Equal(decimal.NewFromInt(22)), "merge sobre el item congelado original")
	assert.True(t, totalQuantity(s, "Costilla de res").Equal(decimal.NewFromInt(25)))

	require.Len(t, s.entries, 2)
	assert.Equal(t, entity.MovementTypeRETURN, s.entries[0].Type)
	assert.Equal(t, entity.BucketDescongelando, s.entries[0].Bucket)
	assert.Equal(t, "no se usó en el servicio", s.entries[0].Note)
	assert.Equal(t, entity.MovementTypeIN, s.entries[1].Type)
	assert.Equal(t, entity.BucketCongelados, s.entries[1].Bucket)
}
