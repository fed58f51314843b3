// Package pdf implementa la generación de reportes imprimibles del
// inventario farmacéutico usando Maroto v2.
//
// Layout de la página A4 horizontal:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: cabecera + una fila por registro                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros + leyenda                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/farmasys/farmastock-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.Generator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa reports.Generator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generate renderiza la tabla del reporte y devuelve los bytes del PDF.
func (g *MarotoPDFGenerator) Generate(_ context.Context, table reports.ReportTable) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(table.Title, true).
		WithAuthor("FarmaStock", true).
		Build()

	m := maroto.New(cfg)

	sizes := columnSizes(len(table.Headers))

	m.AddRows(headerRow(table))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(table.Headers, sizes))
	for _, r := range table.Rows {
		m.AddRows(dataRow(r, sizes))
	}
	if len(table.Summary) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		for _, r := range summaryRows(table.Summary) {
			m.AddRows(r)
		}
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(table.Rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(table reports.ReportTable) core.Row {
	fecha := table.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(14).Add(
		col.New(8).Add(
			text.New(table.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sistema de Inventario Farmacéutico", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con los títulos de columna.
func tableHeaderRow(headers []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		cols = append(cols, col.New(sizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: align.Left,
			Color: colorPrimary, Top: 2, Left: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// dataRow: una fila de datos del reporte.
func dataRow(cells []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		if i >= len(sizes) {
			break
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(c, props.Text{
			Size: 7, Align: align.Left, Top: 1, Left: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

// summaryRows: bloque de resumen (pares etiqueta/valor) tras el detalle.
func summaryRows(summary [][]string) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8.5, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	for _, s := range summary {
		if len(s) < 2 {
			continue
		}
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(s[0]+":", props.Text{
				Style: fontstyle.Bold, Size: 7.5, Top: 1,
			})),
			col.New(9).Add(text.New(s[1], props.Text{
				Size: 7.5, Top: 1,
			})),
		))
	}
	return rows
}

// footerRow: conteo de registros.
func footerRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de registros: %d", count), props.Text{
			Size: 7.5, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnSizes reparte la grilla de 12 columnas de Maroto entre n columnas,
// asignando el sobrante a la primera (normalmente el nombre del producto).
func columnSizes(n int) []int {
	if n <= 0 {
		return nil
	}
	if n > 12 {
		n = 12
	}
	base := 12 / n
	rest := 12 % n
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = base
	}
	sizes[0] += rest
	return sizes
}
