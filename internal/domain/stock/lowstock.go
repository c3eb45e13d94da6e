package stock

import "github.com/jhoicas/Despensa-api/internal/domain/entity"

// IsLowStock indica si el item está en o por debajo de su umbral mínimo.
// La comparación es inclusiva: quantity == umbral cuenta como stock bajo.
func IsLowStock(item entity.StockItem) bool {
	return item.Quantity.LessThanOrEqual(item.MinThreshold)
}

// FilterLowStock devuelve los items que necesitan reposición.
func FilterLowStock(items []*entity.StockItem) []*entity.StockItem {
	var low []*entity.StockItem
	for _, it := range items {
		if it != nil && IsLowStock(*it) {
			low = append(low, it)
		}
	}
	return low
}
