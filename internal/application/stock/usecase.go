package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	domstock "github.com/jhoicas/Despensa-api/internal/domain/stock"
	"github.com/jhoicas/Despensa-api/pkg/logger"
	"github.com/jhoicas/Despensa-api/pkg/retry"
)

// UseCase implementa las operaciones de una bodega de stock de forma
// genérica: la bodega concreta (congelados, secos, ...) llega como parámetro
// y su política sale de la tabla estática de configuración, en lugar de un
// módulo duplicado por bodega.
type UseCase struct {
	txRunner   TxRunner
	itemRepo   repository.StockItemRepository
	ledgerRepo repository.LedgerRepository
	cache      BucketCache // nil = sin caché
	readRetry  retry.Policy
	log        *logger.Logger
}

// NewUseCase construye el caso de uso genérico de bodegas.
func NewUseCase(
	txRunner TxRunner,
	itemRepo repository.StockItemRepository,
	ledgerRepo repository.LedgerRepository,
	cache BucketCache,
	readRetry retry.Policy,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		itemRepo:   itemRepo,
		ledgerRepo: ledgerRepo,
		cache:      cache,
		readRetry:  readRetry,
		log:        log,
	}
}

// AddItemInput entrada para crear un item en una bodega.
type AddItemInput struct {
	Bucket       string
	Name         string
	Quantity     decimal.Decimal
	Unit         string
	Category     string
	MinThreshold *decimal.Decimal
	Location     string
	UserID       string
}

// ListBucket devuelve los items de una bodega en una sede. Lectura con
// reintentos; pasa por el caché si está configurado.
func (uc *UseCase) ListBucket(ctx context.Context, bucket, location string) ([]*entity.StockItem, error) {
	if _, ok := entity.BucketByName(bucket); !ok {
		return nil, domain.ErrInvalidBucket
	}
	if !entity.ValidLocation(location) {
		return nil, domain.ErrInvalidLocation
	}

	if uc.cache != nil {
		if items, err := uc.cache.GetItems(ctx, bucket, location); err == nil && items != nil {
			return items, nil
		} else if err != nil {
			uc.log.Warn().Err(err).Str("bucket", bucket).Msg("caché de bodega no disponible, leyendo del store")
		}
	}

	var items []*entity.StockItem
	err := uc.readRetry.Do(ctx, func(ctx context.Context) error {
		var err error
		items, err = uc.itemRepo.ListByBucket(bucket, location)
		return err
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetItems(ctx, bucket, location, items); err != nil {
			uc.log.Warn().Err(err).Str("bucket", bucket).Msg("no se pudo poblar el caché de bodega")
		}
	}
	return items, nil
}

// LowStock devuelve los items en o por debajo de su umbral mínimo.
func (uc *UseCase) LowStock(ctx context.Context, bucket, location string) ([]*entity.StockItem, error) {
	items, err := uc.ListBucket(ctx, bucket, location)
	if err != nil {
		return nil, err
	}
	return domstock.FilterLowStock(items), nil
}

// AddItem valida contra la política de la bodega, aplica defaults y crea el
// item. Si la cantidad inicial es mayor a cero, registra el asiento IN de
// apertura en la misma transacción.
func (uc *UseCase) AddItem(ctx context.Context, in AddItemInput) (*entity.StockItem, error) {
	cfg, ok := entity.BucketByName(in.Bucket)
	if !ok {
		return nil, domain.ErrInvalidBucket
	}
	if !entity.ValidLocation(in.Location) {
		return nil, domain.ErrInvalidLocation
	}
	if in.Name == "" || in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !cfg.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	unit := in.Unit
	if unit == "" {
		unit = cfg.DefaultUnit
	}
	threshold := cfg.DefaultThreshold
	if in.MinThreshold != nil {
		if in.MinThreshold.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		threshold = *in.MinThreshold
	}
	item := &entity.StockItem{
		ID:           uuid.New().String(),
		Bucket:       in.Bucket,
		Name:         in.Name,
		Quantity:     in.Quantity,
		Unit:         unit,
		Category:     in.Category,
		MinThreshold: threshold,
		Location:     in.Location,
		CreatedBy:    in.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if cfg.HasStatus {
		item.Status = entity.StatusEnProceso
	}

	err := uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository, ledgerRepo repository.LedgerRepository) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		if item.Quantity.IsPositive() {
			return ledgerRepo.Create(&entity.LedgerEntry{
				Bucket:    item.Bucket,
				ItemID:    item.ID,
				ItemName:  item.Name,
				Quantity:  item.Quantity,
				Unit:      item.Unit,
				Category:  item.Category,
				Type:      entity.MovementTypeIN,
				Note:      "alta de inventario",
				Location:  item.Location,
				CreatedBy: in.UserID,
				CreatedAt: now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, item.Bucket, item.Location)
	return item, nil
}

// ConfirmQuantity fija la cantidad absoluta de un item. El motor de
// movimientos calcula el delta y el asiento; item y asiento se persisten en
// una transacción con la fila bloqueada. Delta cero no escribe nada.
func (uc *UseCase) ConfirmQuantity(ctx context.Context, bucket, itemID string, requested decimal.Decimal, userID string) (*entity.StockItem, error) {
	if _, ok := entity.BucketByName(bucket); !ok {
		return nil, domain.ErrInvalidBucket
	}
	now := time.Now()

	var updated *entity.StockItem
	err := uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository, ledgerRepo repository.LedgerRepository) error {
		item, err := itemRepo.GetForUpdate(bucket, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		res, err := domstock.ApplyMovement(*item, requested, userID, now)
		if err != nil {
			return err
		}
		updated = &res.Item
		if res.Entry == nil {
			return nil // no-op: sin cambio y sin asiento
		}
		if err := itemRepo.Update(&res.Item); err != nil {
			return err
		}
		return ledgerRepo.Create(res.Entry)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, bucket, updated.Location)
	return updated, nil
}

// UpdateStatus cambia el estado de un item en bodegas con estado
// (descongelando): en-proceso ↔ listo. No toca cantidades ni el ledger.
func (uc *UseCase) UpdateStatus(ctx context.Context, bucket, itemID, status, userID string) (*entity.StockItem, error) {
	cfg, ok := entity.BucketByName(bucket)
	if !ok {
		return nil, domain.ErrInvalidBucket
	}
	if !cfg.HasStatus {
		return nil, domain.ErrInvalidInput
	}
	if status != entity.StatusEnProceso && status != entity.StatusListo {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.StockItem
	err := uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository, _ repository.LedgerRepository) error {
		item, err := itemRepo.GetForUpdate(bucket, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		item.Status = status
		item.UpdatedAt = time.Now()
		updated = item
		return itemRepo.Update(item)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, bucket, updated.Location)
	return updated, nil
}

// DeleteItem retira un item. Si queda cantidad, primero registra el asiento
// OUT de cierre por el remanente; con cantidad cero se borra sin asiento.
func (uc *UseCase) DeleteItem(ctx context.Context, bucket, itemID, userID string) error {
	if _, ok := entity.BucketByName(bucket); !ok {
		return domain.ErrInvalidBucket
	}
	now := time.Now()

	var location string
	err := uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository, ledgerRepo repository.LedgerRepository) error {
		item, err := itemRepo.GetForUpdate(bucket, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		location = item.Location
		if entry := domstock.ClosingEntry(*item, userID, "retiro de inventario", now); entry != nil {
			if err := ledgerRepo.Create(entry); err != nil {
				return err
			}
		}
		return itemRepo.Delete(bucket, itemID)
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx, bucket, location)
	return nil
}

// ListLedger devuelve el historial de movimientos de una bodega, más
// recientes primero. Lectura con reintentos.
func (uc *UseCase) ListLedger(ctx context.Context, bucket, location string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	if _, ok := entity.BucketByName(bucket); !ok {
		return nil, domain.ErrInvalidBucket
	}
	if location != "" && !entity.ValidLocation(location) {
		return nil, domain.ErrInvalidLocation
	}

	var entries []*entity.LedgerEntry
	err := uc.readRetry.Do(ctx, func(ctx context.Context) error {
		var err error
		entries, err = uc.ledgerRepo.ListByBucket(bucket, location, from, to, limit, offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// invalidate borra el snapshot cacheado de la bodega tras una escritura.
func (uc *UseCase) invalidate(ctx context.Context, bucket, location string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, bucket, location); err != nil {
		uc.log.Warn().Err(err).Str("bucket", bucket).Msg("no se pudo invalidar el caché de bodega")
	}
}
