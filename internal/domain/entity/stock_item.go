package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa una línea de producto dentro de una bodega y una sede.
// Invariante: Quantity nunca es negativa; un movimiento que la dejaría por
// debajo de cero se rechaza antes de persistir.
type StockItem struct {
	ID           string
	Bucket       string // congelados, descongelando, secos, desechables
	Name         string
	Quantity     decimal.Decimal
	Unit         string // kg, unidades, ...
	Category     string // del enum de la bodega
	MinThreshold decimal.Decimal
	Location     string // sede
	Status       string // solo bodegas con estado: en-proceso, listo
	ThawEstimate string // solo descongelando: estimado descriptivo ("24 horas")
	CreatedBy    string // UserID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
