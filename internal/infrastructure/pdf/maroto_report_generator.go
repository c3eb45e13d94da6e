package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Despensa-api/internal/application/report"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

var _ report.MovementReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.MovementReportGenerator usando
// Maroto v2. Renderiza el historial de movimientos de una bodega como tabla:
// fecha, item, tipo, cantidad, unidad y nota.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReport genera el reporte PDF del historial y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementReport(_ context.Context, title, subtitle string, entries []*entity.LedgerEntry) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(reportHeaderRow(title, subtitle, len(entries)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(line.NewRow(2))
	m.AddRows(movementHeaderRow())
	for _, r := range movementDetailRows(entries) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de movimientos: %w", err)
	}
	return doc.GetBytes(), nil
}

// reportHeaderRow: título y subtítulo (izq), fecha de emisión y total (der).
func reportHeaderRow(title, subtitle string, total int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Emitido: "+time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d movimientos", total), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// movementHeaderRow: encabezado de la tabla sobre fondo del color primario.
func movementHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 1.5,
		}))
	}
	return row.New(7).Add(
		h("Fecha", 2, align.Left),
		h("Item", 4, align.Left),
		h("Tipo", 1, align.Center),
		h("Cantidad", 2, align.Right),
		h("Unidad", 1, align.Center),
		h("Nota", 2, align.Left),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// movementDetailRows: una fila por asiento, con zebra en filas pares.
func movementDetailRows(entries []*entity.LedgerEntry) []core.Row {
	zebra := &props.Cell{BackgroundColor: &props.Color{Red: 242, Green: 245, Blue: 243}}

	d := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1.5}))
	}

	rows := make([]core.Row, 0, len(entries))
	for i, e := range entries {
		r := row.New(6.5).Add(
			d(e.CreatedAt.Format("2006-01-02 15:04"), 2, align.Left),
			d(e.ItemName, 4, align.Left),
			d(e.Type, 1, align.Center),
			d(e.Quantity.String(), 2, align.Right),
			d(e.Unit, 1, align.Center),
			d(e.Note, 2, align.Left),
		)
		if i%2 == 1 {
			r.WithStyle(zebra)
		}
		rows = append(rows, r)
	}
	return rows
}
