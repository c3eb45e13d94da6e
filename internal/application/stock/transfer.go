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
)

// TransferUseCase coordina el traslado de cantidad entre dos bodegas como
// una sola unidad lógica: merge-o-creación en destino, decremento en origen
// vía el motor de movimientos y los dos asientos de ledger, todo dentro de
// una misma transacción con bloqueo de filas. No puede observarse un
// traslado a medias.
type TransferUseCase struct {
	txRunner TxRunner
	cache    BucketCache // nil = sin caché
	log      *logger.Logger
}

// NewTransferUseCase construye el coordinador de traslados.
func NewTransferUseCase(txRunner TxRunner, cache BucketCache, log *logger.Logger) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, cache: cache, log: log}
}

// TransferInput entrada para un traslado o retorno.
type TransferInput struct {
	Bucket   string // bodega origen (donde vive el item hoy)
	ItemID   string
	Quantity decimal.Decimal
	Note     string
	UserID   string
}

// TransferResult ambos lados del traslado ya persistidos.
type TransferResult struct {
	Source      *entity.StockItem
	Destination *entity.StockItem
}

// Transfer traslada cantidad del item hacia la bodega destino configurada
// para su bodega (congelados → descongelando). El lado saliente queda como
// asiento OUT.
func (uc *TransferUseCase) Transfer(ctx context.Context, in TransferInput) (*TransferResult, error) {
	return uc.run(ctx, in, entity.MovementTypeOUT)
}

// ReturnToSource devuelve cantidad a la bodega de origen (descongelando →
// congelados). Misma forma que Transfer; el lado saliente queda como
// asiento RETURN.
func (uc *TransferUseCase) ReturnToSource(ctx context.Context, in TransferInput) (*TransferResult, error) {
	return uc.run(ctx, in, entity.MovementTypeRETURN)
}

func (uc *TransferUseCase) run(ctx context.Context, in TransferInput, outType string) (*TransferResult, error) {
	srcCfg, ok := entity.BucketByName(in.Bucket)
	if !ok {
		return nil, domain.ErrInvalidBucket
	}
	if srcCfg.TransferTo == "" {
		return nil, domain.ErrTransferNotAllowed
	}
	destCfg, ok := entity.BucketByName(srcCfg.TransferTo)
	if !ok {
		return nil, domain.ErrInvalidBucket
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var result TransferResult

	err := uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository, ledgerRepo repository.LedgerRepository) error {
		// Bloquea la fila origen y verifica la precondición antes de tocar nada
		source, err := itemRepo.GetForUpdate(in.Bucket, in.ItemID)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}
		if source.Quantity.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}

		// Destino: merge por nombre+categoría en la misma sede, o creación
		dest, err := itemRepo.FindByNameAndCategory(destCfg.Name, source.Location, source.Name, source.Category)
		if err != nil {
			return err
		}
		created := false
		if dest == nil {
			created = true
			dest = &entity.StockItem{
				ID:           uuid.New().String(),
				Bucket:       destCfg.Name,
				Name:         source.Name,
				Quantity:     in.Quantity,
				Unit:         source.Unit,
				Category:     source.Category,
				MinThreshold: destCfg.DefaultThreshold,
				Location:     source.Location,
				CreatedBy:    in.UserID,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
		} else {
			dest.Quantity = dest.Quantity.Add(in.Quantity)
			dest.UpdatedAt = now
		}
		if destCfg.HasStatus {
			// El estimado se recalcula sobre la cantidad trasladada; es
			// metadato descriptivo del rótulo, no condiciona operaciones.
			dest.ThawEstimate = domstock.EstimateThawTime(in.Quantity)
			if created {
				dest.Status = entity.StatusEnProceso
			}
		}
		if created {
			if err := itemRepo.Create(dest); err != nil {
				return err
			}
		} else {
			if err := itemRepo.Update(dest); err != nil {
				return err
			}
		}

		// Decremento en origen vía el motor de movimientos
		res, err := domstock.ApplyMovement(*source, source.Quantity.Sub(in.Quantity), in.UserID, now)
		if err != nil {
			return err
		}
		if err := itemRepo.Update(&res.Item); err != nil {
			return err
		}
		if res.Entry != nil {
			res.Entry.Type = outType
			res.Entry.Note = in.Note
			if err := ledgerRepo.Create(res.Entry); err != nil {
				return err
			}
		}

		// Asiento de entrada en destino
		if err := ledgerRepo.Create(&entity.LedgerEntry{
			Bucket:    destCfg.Name,
			ItemID:    dest.ID,
			ItemName:  dest.Name,
			Quantity:  in.Quantity,
			Unit:      dest.Unit,
			Category:  dest.Category,
			Type:      entity.MovementTypeIN,
			Note:      in.Note,
			Location:  dest.Location,
			CreatedBy: in.UserID,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		result.Source = &res.Item
		result.Destination = dest
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, in.Bucket, result.Source.Location)
	uc.invalidate(ctx, destCfg.Name, result.Destination.Location)
	return &result, nil
}

func (uc *TransferUseCase) invalidate(ctx context.Context, bucket, location string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, bucket, location); err != nil {
		uc.log.Warn().Err(err).Str("bucket", bucket).Msg("no se pudo invalidar el caché de bodega")
	}
}
