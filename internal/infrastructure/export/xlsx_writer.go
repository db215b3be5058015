package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Gestion-api/internal/application/datatable"
)

const headerFill = "00467F"

// XLSXWriter libro Office Open XML vía excelize.
type XLSXWriter struct{}

// NewXLSXWriter construye el writer.
func NewXLSXWriter() *XLSXWriter { return &XLSXWriter{} }

var _ datatable.Writer = (*XLSXWriter)(nil)

func (w *XLSXWriter) Format() string { return "xlsx" }

func (w *XLSXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (w *XLSXWriter) Write(ctx context.Context, doc datatable.ExportDocument, hooks datatable.Hooks, out io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	props := beforeExport(hooks)
	dp := &excelize.DocProperties{
		Creator:        props.Creator,
		LastModifiedBy: props.Creator,
		Title:          props.Title,
		Subject:        props.Subject,
		Description:    props.Description,
	}
	if !props.Created.IsZero() {
		dp.Created = props.Created.UTC().Format(time.RFC3339)
		dp.Modified = dp.Created
	}
	if err := f.SetDocProps(dp); err != nil {
		return fmt.Errorf("xlsx: propiedades: %w", err)
	}
	if props.Company != "" {
		if err := f.SetAppProps(&excelize.AppProperties{Company: props.Company}); err != nil {
			return fmt.Errorf("xlsx: propiedades de aplicación: %w", err)
		}
	}

	name := sheetName(doc.SheetTitle)
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return fmt.Errorf("xlsx: nombre de hoja: %w", err)
	}
	if err := setRow(f, name, 1, doc.Headers); err != nil {
		return err
	}
	for i, r := range doc.Rows {
		if i%500 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := setRow(f, name, i+2, r); err != nil {
			return err
		}
	}

	sheet := &xlsxSheet{f: f, name: name, cols: len(doc.Headers), rows: len(doc.Rows)}
	if err := afterSheet(hooks, sheet, doc); err != nil {
		return err
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("xlsx: escribir: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, n int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("xlsx: celda: %w", err)
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", n, err)
	}
	return nil
}

// xlsxSheet adapta una hoja de excelize a datatable.Sheet.
type xlsxSheet struct {
	f    *excelize.File
	name string
	cols int
	rows int
}

func (s *xlsxSheet) Name() string { return s.name }

func (s *xlsxSheet) lastHeaderCell() (string, error) {
	return excelize.CoordinatesToCellName(max(s.cols, 1), 1)
}

func (s *xlsxSheet) StyleHeader() error {
	style, err := s.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return err
	}
	last, err := s.lastHeaderCell()
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(s.name, "A1", last, style)
}

func (s *xlsxSheet) FreezeHeader() error {
	return s.f.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (s *xlsxSheet) AutoFilter() error {
	if s.cols == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(s.cols, s.rows+1)
	if err != nil {
		return err
	}
	return s.f.AutoFilter(s.name, "A1:"+last, nil)
}

func (s *xlsxSheet) SetColumnWidth(col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return err
	}
	return s.f.SetColWidth(s.name, name, name, width)
}
