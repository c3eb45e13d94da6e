package repository

import (
	"time"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para el historial de
// movimientos. Append-only: no hay Update ni Delete.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	ListByBucket(bucket, location string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
}
