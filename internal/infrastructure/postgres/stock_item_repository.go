package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL
// (usable con pool o tx). Una sola tabla stock_items con columna bucket
// sirve a todas las bodegas.
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de items. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, bucket, name, quantity, unit, category, min_threshold, location, status, thaw_estimate, created_by, created_at, updated_at`

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var it entity.StockItem
	var status, thaw, createdBy *string
	err := row.Scan(
		&it.ID, &it.Bucket, &it.Name, &it.Quantity, &it.Unit, &it.Category,
		&it.MinThreshold, &it.Location, &status, &thaw, &createdBy,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if status != nil {
		it.Status = *status
	}
	if thaw != nil {
		it.ThawEstimate = *thaw
	}
	if createdBy != nil {
		it.CreatedBy = *createdBy
	}
	return &it, nil
}

// GetByID obtiene un item por bodega e ID. Devuelve nil si no existe.
func (r *StockItemRepo) GetByID(bucket, id string) (*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items WHERE bucket = $1 AND id = $2`
	it, err := scanStockItem(r.q.QueryRow(context.Background(), query, bucket, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return it, nil
}

// GetForUpdate obtiene el item y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockItemRepo) GetForUpdate(bucket, id string) (*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items WHERE bucket = $1 AND id = $2
		FOR UPDATE`
	it, err := scanStockItem(r.q.QueryRow(context.Background(), query, bucket, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item for update: %w", err)
	}
	return it, nil
}

// FindByNameAndCategory localiza el item destino de un merge en traslados.
// Bloquea la fila si existe (la búsqueda ocurre dentro de la tx del traslado).
func (r *StockItemRepo) FindByNameAndCategory(bucket, location, name, category string) (*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items
		WHERE bucket = $1 AND location = $2 AND name = $3 AND category = $4
		FOR UPDATE`
	it, err := scanStockItem(r.q.QueryRow(context.Background(), query, bucket, location, name, category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find stock item by name and category: %w", err)
	}
	return it, nil
}

// ListByBucket lista los items de una bodega en una sede, por nombre.
func (r *StockItemRepo) ListByBucket(bucket, location string) ([]*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items WHERE bucket = $1 AND location = $2
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, bucket, location)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		it, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Create persiste un nuevo item.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Bucket, item.Name, item.Quantity, item.Unit, item.Category,
		item.MinThreshold, item.Location, nullable(item.Status), nullable(item.ThawEstimate),
		nullable(item.CreatedBy), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// Update reescribe los campos mutables del item.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET name = $3, quantity = $4, unit = $5, category = $6, min_threshold = $7,
		    status = $8, thaw_estimate = $9, updated_at = $10
		WHERE bucket = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		item.Bucket, item.ID, item.Name, item.Quantity, item.Unit, item.Category,
		item.MinThreshold, nullable(item.Status), nullable(item.ThawEstimate), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el item. El asiento de cierre del ledger es responsabilidad
// del caso de uso, en la misma transacción.
func (r *StockItemRepo) Delete(bucket, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_items WHERE bucket = $1 AND id = $2`, bucket, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// nullable convierte "" en NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
