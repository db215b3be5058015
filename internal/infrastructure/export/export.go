// Package export implementa los formatos de archivo de los listados (xlsx, csv, xml).
package export

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Gestion-api/internal/application/datatable"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

// Writers formatos disponibles indexados por extensión.
func Writers() map[string]datatable.Writer {
	out := map[string]datatable.Writer{}
	for _, w := range []datatable.Writer{NewXLSXWriter(), NewCSVWriter(), NewXMLWriter()} {
		out[w.Format()] = w
	}
	return out
}

// Lookup resuelve un formato sin distinguir mayúsculas.
func Lookup(writers map[string]datatable.Writer, format string) (datatable.Writer, error) {
	w, ok := writers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return w, nil
}

// beforeExport invoca BeforeExport y devuelve las propiedades resultantes.
func beforeExport(hooks datatable.Hooks) *datatable.DocumentProperties {
	props := &datatable.DocumentProperties{}
	if hooks != nil {
		hooks.BeforeExport(&datatable.BeforeExportEvent{Properties: props})
	}
	return props
}

func afterSheet(hooks datatable.Hooks, sheet datatable.Sheet, doc datatable.ExportDocument) error {
	if hooks == nil {
		return nil
	}
	if err := hooks.AfterSheet(&datatable.AfterSheetEvent{Sheet: sheet, Headers: doc.Headers, Rows: doc.Rows}); err != nil {
		return fmt.Errorf("export: after sheet: %w", err)
	}
	return nil
}

// sheetName ajusta el título a las restricciones de nombre de hoja de Excel.
func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = "Hoja1"
	}
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}
