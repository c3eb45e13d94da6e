package stock

import "github.com/shopspring/decimal"

// Cortes de la función escalonada de estimación de descongelado.
var (
	thawSmall  = decimal.NewFromInt(2)
	thawMedium = decimal.NewFromInt(5)
)

// Estimados descriptivos de tiempo de descongelado. Son metadatos para el
// rótulo del item; no condicionan ninguna operación posterior.
const (
	ThawShort  = "12 horas"
	ThawMedium = "24 horas"
	ThawLong   = "48 horas"
)

// EstimateThawTime mapea la cantidad trasladada a un estimado de tiempo de
// descongelado: monótona por cortes fijos (≤2 corto, ≤5 medio, >5 largo).
func EstimateThawTime(quantity decimal.Decimal) string {
	switch {
	case quantity.LessThanOrEqual(thawSmall):
		return ThawShort
	case quantity.LessThanOrEqual(thawMedium):
		return ThawMedium
	default:
		return ThawLong
	}
}
