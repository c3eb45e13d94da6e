package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/label"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/pkg/retry"
)

// UseCase arma los datos de etiquetas y reportes y delega el render a los
// generadores PDF.
type UseCase struct {
	itemRepo   repository.StockItemRepository
	ledgerRepo repository.LedgerRepository
	labels     LabelSheetGenerator
	reports    MovementReportGenerator
	readRetry  retry.Policy
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	itemRepo repository.StockItemRepository,
	ledgerRepo repository.LedgerRepository,
	labels LabelSheetGenerator,
	reports MovementReportGenerator,
	readRetry retry.Policy,
) *UseCase {
	return &UseCase{
		itemRepo:   itemRepo,
		ledgerRepo: ledgerRepo,
		labels:     labels,
		reports:    reports,
		readRetry:  readRetry,
	}
}

// LabelSheet genera count códigos únicos para el item y el PDF con sus QR.
// Devuelve también los códigos para que el caller pueda registrarlos.
func (uc *UseCase) LabelSheet(ctx context.Context, bucket, itemID string, count int) ([]string, []byte, error) {
	cfg, ok := entity.BucketByName(bucket)
	if !ok {
		return nil, nil, domain.ErrInvalidBucket
	}

	var item *entity.StockItem
	err := uc.readRetry.Do(ctx, func(ctx context.Context) error {
		var err error
		item, err = uc.itemRepo.GetByID(bucket, itemID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, domain.ErrNotFound
	}

	codes, err := label.Generate(cfg, item.ID, count, time.Now())
	if err != nil {
		return nil, nil, err
	}
	pdf, err := uc.labels.GenerateLabelSheet(ctx, item, codes)
	if err != nil {
		return nil, nil, err
	}
	return codes, pdf, nil
}

// MovementReport genera el PDF del historial de movimientos de una bodega
// en una sede y rango de fechas.
func (uc *UseCase) MovementReport(ctx context.Context, bucket, location string, from, to *time.Time) ([]byte, error) {
	if _, ok := entity.BucketByName(bucket); !ok {
		return nil, domain.ErrInvalidBucket
	}
	if location != "" && !entity.ValidLocation(location) {
		return nil, domain.ErrInvalidLocation
	}

	var entries []*entity.LedgerEntry
	err := uc.readRetry.Do(ctx, func(ctx context.Context) error {
		var err error
		entries, err = uc.ledgerRepo.ListByBucket(bucket, location, from, to, 500, 0)
		return err
	})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Historial de movimientos — %s", bucket)
	subtitle := location
	if subtitle == "" {
		subtitle = "todas las sedes"
	}
	if from != nil && to != nil {
		subtitle = fmt.Sprintf("%s · %s a %s", subtitle, from.Format("02/01/2006"), to.Format("02/01/2006"))
	}
	return uc.reports.GenerateMovementReport(ctx, title, subtitle, entries)
}
