// Package pdf implementa la vista de impresión de listados en PDF.
//
// Layout de la página A4 horizontal:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del listado  │  Fecha de generación         │
//	│  Subtítulo (aplicación · total de registros)                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: encabezado con fondo + una fila por registro        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: empresa                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"math"

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

	"github.com/jhoicas/Gestion-api/internal/application/datatable"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

const maxColumnWeight = 4

// ── Printer ───────────────────────────────────────────────────────────────────

// MarotoListPrinter implementa datatable.Printer usando Maroto v2.
type MarotoListPrinter struct {
	company string
}

// NewMarotoListPrinter construye el generador. company aparece en el pie.
func NewMarotoListPrinter(company string) *MarotoListPrinter {
	return &MarotoListPrinter{company: company}
}

var _ datatable.Printer = (*MarotoListPrinter)(nil)

// Print genera el PDF y devuelve sus bytes.
func (p *MarotoListPrinter) Print(ctx context.Context, doc datatable.PrintDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(doc.Headers) == 0 {
		return nil, fmt.Errorf("pdf: el listado no tiene columnas imprimibles")
	}

	weights, grid := columnWeights(doc.Headers, doc.Rows)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(grid).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle(doc.Title, true).
		WithAuthor(p.company, true).
		Build()

	m := maroto.New(cfg)

	if p.company != "" {
		if err := m.RegisterFooter(footerRow(p.company, grid)); err != nil {
			return nil, fmt.Errorf("pdf: registrar pie: %w", err)
		}
	}

	m.AddRows(headerRow(doc, grid))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(doc.Headers, weights))
	m.AddRows(tableRows(doc.Rows, weights)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y subtítulo (izq) y fecha de generación (der).
func headerRow(doc datatable.PrintDocument, grid int) core.Row {
	left := grid * 2 / 3
	if left < 1 {
		left = 1
	}
	right := grid - left
	r := row.New(14)
	r.Add(col.New(left).Add(
		text.New(doc.Title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
		text.New(doc.Subtitle, props.Text{
			Size: 8, Top: 8, Color: colorGray,
		}),
	))
	if right > 0 {
		r.Add(col.New(right).Add(
			text.New("Generado: "+doc.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		))
	}
	return r
}

// tableHeaderRow: encabezado con fondo del color primario.
func tableHeaderRow(headers []string, weights []int) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		cols = append(cols, col.New(weights[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 7, Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	return row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(cols...)
}

// tableRows: una fila por registro, con franjas alternas.
func tableRows(rows [][]string, weights []int) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for n, values := range rows {
		cols := make([]core.Col, 0, len(weights))
		for i, w := range weights {
			v := ""
			if i < len(values) {
				v = values[i]
			}
			cols = append(cols, col.New(w).Add(text.New(v, props.Text{
				Size: 7, Top: 1, Left: 1, Right: 1,
			})))
		}
		r := row.New(6).Add(cols...)
		if n%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

func footerRow(company string, grid int) core.Row {
	return row.New(6).Add(col.New(grid).Add(
		text.New(company, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnWeights reparte la grilla según el ancho de texto de cada columna.
func columnWeights(headers []string, rows [][]string) ([]int, int) {
	widths := datatable.ColumnWidths(headers, rows)
	weights := make([]int, len(widths))
	grid := 0
	for i, w := range widths {
		weights[i] = int(math.Min(maxColumnWeight, math.Max(1, math.Ceil(w/8))))
		grid += weights[i]
	}
	return weights, grid
}
