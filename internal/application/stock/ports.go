package stock

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el ajuste de cantidades y sus
// asientos de ledger se apliquen de forma atómica; en un traslado, ambos
// lados y ambos asientos quedan en la misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}

// BucketCache caché opcional de listados por bodega+sede. Un error o un miss
// degradan a lectura directa del store; nunca bloquean la operación.
type BucketCache interface {
	GetItems(ctx context.Context, bucket, location string) ([]*entity.StockItem, error)
	SetItems(ctx context.Context, bucket, location string, items []*entity.StockItem) error
	Invalidate(ctx context.Context, bucket, location string) error
}
