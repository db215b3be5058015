package datatable

import (
	"context"
	"io"
	"time"
)

// DocumentProperties metadatos del libro exportado.
type DocumentProperties struct {
	Creator     string
	Title       string
	Subject     string
	Description string
	Company     string
	Created     time.Time
}

// Sheet hoja en construcción; cada formato implementa lo que soporta y
// devuelve nil en lo demás.
type Sheet interface {
	Name() string
	StyleHeader() error
	FreezeHeader() error
	AutoFilter() error
	SetColumnWidth(col int, width float64) error
}

// BeforeExportEvent se emite antes de escribir el libro.
type BeforeExportEvent struct {
	Properties *DocumentProperties
}

// AfterSheetEvent se emite con la hoja ya llena.
type AfterSheetEvent struct {
	Sheet   Sheet
	Headers []string
	Rows    [][]string
}

// Hooks ganchos que el motor de exportación invoca.
type Hooks interface {
	BeforeExport(ev *BeforeExportEvent)
	AfterSheet(ev *AfterSheetEvent) error
}

// ExportDocument datos planos a exportar (sin marcado).
type ExportDocument struct {
	SheetTitle string
	Headers    []string
	Rows       [][]string
}

// Writer escribe un ExportDocument en un formato de archivo.
type Writer interface {
	Format() string // extensión en minúsculas: xlsx, csv, xml
	ContentType() string
	Write(ctx context.Context, doc ExportDocument, hooks Hooks, w io.Writer) error
}

// PrintDocument contenido de la vista de impresión.
type PrintDocument struct {
	Title       string
	Subtitle    string
	Headers     []string
	Rows        [][]string
	GeneratedAt time.Time
}

// Printer genera la vista de impresión (PDF).
type Printer interface {
	Print(ctx context.Context, doc PrintDocument) ([]byte, error)
}
