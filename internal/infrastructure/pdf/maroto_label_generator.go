// Package pdf implementa los documentos imprimibles del inventario con
// Maroto v2: hojas de etiquetas QR por item y el reporte de historial de
// movimientos por bodega.
//
// Layout de la hoja de etiquetas (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del item  │  Bodega + Sede                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GRILLA: 3 etiquetas por fila                               │
//	│    [QR]      [QR]      [QR]                                 │
//	│    código    código    código                               │
//	│  ...                                                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 57}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// labelsPerRow etiquetas por fila de la grilla.
const labelsPerRow = 3

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.LabelSheetGenerator = (*MarotoLabelGenerator)(nil)

// MarotoLabelGenerator implementa report.LabelSheetGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateLabelSheet genera la hoja de etiquetas QR y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateLabelSheet(_ context.Context, item *entity.StockItem, codes []string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiquetas de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(labelHeaderRow(item, len(codes)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(line.NewRow(2))

	for _, r := range labelGridRows(codes) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelHeaderRow: nombre del item (izq), bodega + sede + total (der).
func labelHeaderRow(item *entity.StockItem, count int) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(item.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Categoría: %s   |   Unidad: %s", item.Category, item.Unit), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ETIQUETAS DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s · %s", item.Bucket, item.Location), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("%d etiquetas", count), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// labelGridRows: grilla de 3 etiquetas por fila, QR arriba y código debajo.
func labelGridRows(codes []string) []core.Row {
	var rows []core.Row
	for start := 0; start < len(codes); start += labelsPerRow {
		end := start + labelsPerRow
		if end > len(codes) {
			end = len(codes)
		}

		qrCols := make([]core.Col, 0, labelsPerRow)
		txtCols := make([]core.Col, 0, labelsPerRow)
		for _, c := range codes[start:end] {
			qrCols = append(qrCols, col.New(4).Add(code.NewQr(c, props.Rect{
				Percent: 85,
				Center:  true,
			})))
			txtCols = append(txtCols, col.New(4).Add(text.New(c, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			})))
		}
		// Completar la fila para mantener la grilla alineada
		for i := end - start; i < labelsPerRow; i++ {
			qrCols = append(qrCols, col.New(4))
			txtCols = append(txtCols, col.New(4))
		}

		rows = append(rows,
			row.New(42).Add(qrCols...),
			row.New(6).Add(txtCols...),
			row.New(4),
		)
	}
	return rows
}
