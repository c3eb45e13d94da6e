package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con
// pool o tx). La tabla stock_ledger es append-only: este adaptador no expone
// UPDATE ni DELETE.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste un asiento del historial de movimientos.
func (r *LedgerRepo) Create(entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_ledger (id, bucket, item_id, item_name, quantity, unit, category, type, note, location, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	createdBy := (*string)(nil)
	if entry.CreatedBy != "" {
		createdBy = &entry.CreatedBy
	}
	note := (*string)(nil)
	if entry.Note != "" {
		note = &entry.Note
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Bucket, entry.ItemID, entry.ItemName, entry.Quantity,
		entry.Unit, entry.Category, entry.Type, note, entry.Location,
		createdBy, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID. Devuelve nil si no existe.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := `
		SELECT id, bucket, item_id, item_name, quantity, unit, category, type, note, location, created_by, created_at
		FROM stock_ledger WHERE id = $1`
	var e entity.LedgerEntry
	var note, createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Bucket, &e.ItemID, &e.ItemName, &e.Quantity, &e.Unit,
		&e.Category, &e.Type, &note, &e.Location, &createdBy, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	if note != nil {
		e.Note = *note
	}
	if createdBy != nil {
		e.CreatedBy = *createdBy
	}
	return &e, nil
}

// ListByBucket lista asientos de una bodega (opcionalmente filtrados por
// sede y rango de fechas), más recientes primero.
func (r *LedgerRepo) ListByBucket(bucket, location string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, bucket, item_id, item_name, quantity, unit, category, type, note, location, created_by, created_at
		FROM stock_ledger WHERE bucket = $1`
	args := []any{bucket}
	pos := 2
	if location != "" {
		query += fmt.Sprintf(" AND location = $%d", pos)
		args = append(args, location)
		pos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		var note, createdBy *string
		if err := rows.Scan(&e.ID, &e.Bucket, &e.ItemID, &e.ItemName, &e.Quantity,
			&e.Unit, &e.Category, &e.Type, &note, &e.Location, &createdBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		if note != nil {
			e.Note = *note
		}
		if createdBy != nil {
			e.CreatedBy = *createdBy
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
