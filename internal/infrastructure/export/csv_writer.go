package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jhoicas/Gestion-api/internal/application/datatable"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter texto separado por comas con BOM UTF-8 para que Excel respete los acentos.
type CSVWriter struct{}

func NewCSVWriter() *CSVWriter { return &CSVWriter{} }

var _ datatable.Writer = (*CSVWriter)(nil)

func (w *CSVWriter) Format() string { return "csv" }

func (w *CSVWriter) ContentType() string { return "text/csv; charset=utf-8" }

func (w *CSVWriter) Write(ctx context.Context, doc datatable.ExportDocument, hooks datatable.Hooks, out io.Writer) error {
	beforeExport(hooks)

	if _, err := out.Write(utf8BOM); err != nil {
		return fmt.Errorf("csv: bom: %w", err)
	}
	cw := csv.NewWriter(out)
	if err := cw.Write(doc.Headers); err != nil {
		return fmt.Errorf("csv: encabezado: %w", err)
	}
	for i, r := range doc.Rows {
		if i%500 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := cw.Write(r); err != nil {
			return fmt.Errorf("csv: fila %d: %w", i+1, err)
		}
	}
	if err := afterSheet(hooks, plainSheet{name: sheetName(doc.SheetTitle)}, doc); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// plainSheet hoja sin formato: estilos, paneles y anchos no aplican.
type plainSheet struct{ name string }

func (s plainSheet) Name() string { return s.name }

func (plainSheet) StyleHeader() error { return nil }

func (plainSheet) FreezeHeader() error { return nil }

func (plainSheet) AutoFilter() error { return nil }

func (plainSheet) SetColumnWidth(int, float64) error { return nil }
