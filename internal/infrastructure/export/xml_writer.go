package export

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Gestion-api/internal/application/datatable"
)

const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	nsOffice      = "urn:schemas-microsoft-com:office:office"
	nsExcel       = "urn:schemas-microsoft-com:office:excel"

	headerStyleID = "header"
)

// XMLWriter libro XML Spreadsheet 2003, abrible por Excel y LibreOffice.
type XMLWriter struct{}

func NewXMLWriter() *XMLWriter { return &XMLWriter{} }

var _ datatable.Writer = (*XMLWriter)(nil)

func (w *XMLWriter) Format() string { return "xml" }

func (w *XMLWriter) ContentType() string { return "application/vnd.ms-excel" }

func (w *XMLWriter) Write(ctx context.Context, doc datatable.ExportDocument, hooks datatable.Hooks, out io.Writer) error {
	props := beforeExport(hooks)

	// El formato exige columnas antes que filas: los ganchos se registran y luego se arma el árbol.
	sheet := &xmlSheet{name: sheetName(doc.SheetTitle), widths: map[int]float64{}}
	if err := afterSheet(hooks, sheet, doc); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	x.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	wb := x.CreateElement("Workbook")
	wb.CreateAttr("xmlns", nsSpreadsheet)
	wb.CreateAttr("xmlns:o", nsOffice)
	wb.CreateAttr("xmlns:x", nsExcel)
	wb.CreateAttr("xmlns:ss", nsSpreadsheet)

	docProps(wb, props)
	if sheet.styled {
		st := wb.CreateElement("Styles").CreateElement("Style")
		st.CreateAttr("ss:ID", headerStyleID)
		font := st.CreateElement("Font")
		font.CreateAttr("ss:Bold", "1")
		font.CreateAttr("ss:Color", "#FFFFFF")
		interior := st.CreateElement("Interior")
		interior.CreateAttr("ss:Color", "#"+headerFill)
		interior.CreateAttr("ss:Pattern", "Solid")
	}

	ws := wb.CreateElement("Worksheet")
	ws.CreateAttr("ss:Name", sheet.name)
	table := ws.CreateElement("Table")
	for i := range doc.Headers {
		c := table.CreateElement("Column")
		c.CreateAttr("ss:Index", strconv.Itoa(i+1))
		if w, ok := sheet.widths[i]; ok {
			// ancho en puntos: ~5.6 por carácter
			c.CreateAttr("ss:Width", strconv.FormatFloat(w*5.6, 'f', 1, 64))
		}
	}
	addRow(table, doc.Headers, sheet.styled)
	for _, r := range doc.Rows {
		addRow(table, r, false)
	}

	if sheet.frozen {
		opts := ws.CreateElement("WorksheetOptions")
		opts.CreateAttr("xmlns", nsExcel)
		opts.CreateElement("FreezePanes")
		opts.CreateElement("FrozenNoSplit")
		opts.CreateElement("SplitHorizontal").SetText("1")
		opts.CreateElement("TopRowBottomPane").SetText("1")
		opts.CreateElement("ActivePane").SetText("2")
	}
	if sheet.filtered && len(doc.Headers) > 0 {
		af := ws.CreateElement("AutoFilter")
		af.CreateAttr("xmlns", nsExcel)
		af.CreateAttr("x:Range", fmt.Sprintf("R1C1:R%dC%d", len(doc.Rows)+1, len(doc.Headers)))
	}

	x.Indent(1)
	if _, err := x.WriteTo(out); err != nil {
		return fmt.Errorf("xml: escribir: %w", err)
	}
	return nil
}

func docProps(wb *etree.Element, p *datatable.DocumentProperties) {
	dp := wb.CreateElement("DocumentProperties")
	dp.CreateAttr("xmlns", nsOffice)
	set := func(tag, v string) {
		if v != "" {
			dp.CreateElement(tag).SetText(v)
		}
	}
	set("Title", p.Title)
	set("Subject", p.Subject)
	set("Author", p.Creator)
	set("Description", p.Description)
	set("Company", p.Company)
	if !p.Created.IsZero() {
		set("Created", p.Created.UTC().Format(time.RFC3339))
	}
}

func addRow(table *etree.Element, values []string, header bool) {
	row := table.CreateElement("Row")
	for _, v := range values {
		cell := row.CreateElement("Cell")
		if header {
			cell.CreateAttr("ss:StyleID", headerStyleID)
		}
		data := cell.CreateElement("Data")
		data.CreateAttr("ss:Type", "String")
		data.SetText(v)
	}
}

// xmlSheet registra lo que piden los ganchos para aplicarlo al armar el documento.
type xmlSheet struct {
	name     string
	styled   bool
	frozen   bool
	filtered bool
	widths   map[int]float64
}

func (s *xmlSheet) Name() string { return s.name }

func (s *xmlSheet) StyleHeader() error {
	s.styled = true
	return nil
}

func (s *xmlSheet) FreezeHeader() error {
	s.frozen = true
	return nil
}

func (s *xmlSheet) AutoFilter() error {
	s.filtered = true
	return nil
}

func (s *xmlSheet) SetColumnWidth(col int, width float64) error {
	s.widths[col] = width
	return nil
}
