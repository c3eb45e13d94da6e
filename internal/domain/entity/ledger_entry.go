package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del ledger. La cantidad del asiento siempre es positiva;
// el tipo codifica el signo.
const (
	MovementTypeIN     = "IN"     // entrada a la bodega
	MovementTypeOUT    = "OUT"    // salida de la bodega
	MovementTypeRETURN = "RETURN" // retorno a la bodega de origen
)

// LedgerEntry es un asiento inmutable del historial de movimientos.
// Solo se crea una vez por movimiento completado; nunca se actualiza ni se
// borra, y nunca se escribe para un movimiento rechazado o con delta cero.
type LedgerEntry struct {
	ID        string
	Bucket    string
	ItemID    string
	ItemName  string
	Quantity  decimal.Decimal // magnitud del movimiento, siempre > 0
	Unit      string
	Category  string
	Type      string // IN, OUT, RETURN
	Note      string
	Location  string
	CreatedBy string // UserID
	CreatedAt time.Time
}
