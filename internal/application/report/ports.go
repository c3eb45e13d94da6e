package report

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// LabelSheetGenerator produce el documento imprimible con los códigos QR de
// un item. Este módulo solo aporta los datos; el layout es del generador.
type LabelSheetGenerator interface {
	GenerateLabelSheet(ctx context.Context, item *entity.StockItem, codes []string) ([]byte, error)
}

// MovementReportGenerator produce el reporte imprimible del historial de
// movimientos de una bodega.
type MovementReportGenerator interface {
	GenerateMovementReport(ctx context.Context, title, subtitle string, entries []*entity.LedgerEntry) ([]byte, error)
}
