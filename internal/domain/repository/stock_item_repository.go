package repository

import "github.com/jhoicas/Despensa-api/internal/domain/entity"

// StockItemRepository define el puerto de persistencia para StockItem.
// Una misma implementación sirve a todas las bodegas (parametrizada por el
// nombre de bodega), en lugar de un módulo duplicado por bodega.
type StockItemRepository interface {
	GetByID(bucket, id string) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar
	// dentro de transacciones.
	GetForUpdate(bucket, id string) (*entity.StockItem, error)
	// FindByNameAndCategory localiza el item destino de un merge en traslados.
	FindByNameAndCategory(bucket, location, name, category string) (*entity.StockItem, error)
	ListByBucket(bucket, location string) ([]*entity.StockItem, error)
	Create(item *entity.StockItem) error
	Update(item *entity.StockItem) error
	Delete(bucket, id string) error
}
