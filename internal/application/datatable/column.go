package datatable

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column describe una columna del listado: qué dato muestra y cómo se comporta
// al ordenar, buscar, exportar e imprimir.
type Column struct {
	Data       string `json:"data"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	ClassName  string `json:"className,omitempty"`
	Footer     string `json:"footer,omitempty"`
	Orderable  bool   `json:"orderable"`
	Searchable bool   `json:"searchable"`
	Exportable bool   `json:"exportable"`
	Printable  bool   `json:"printable"`
	Computed   bool   `json:"-"`
	// Raw el valor es marcado HTML y no se escapa al pintarlo.
	Raw bool `json:"-"`
	// Render nil se serializa como null: el cliente muestra el valor tal cual.
	Render *string `json:"render"`
}

var titleCaser = cases.Title(language.Spanish)

// Make columna respaldada por un campo persistido.
func Make(data string) Column {
	return Column{
		Data:       data,
		Name:       data,
		Title:      humanize(data),
		Orderable:  true,
		Searchable: true,
		Exportable: true,
		Printable:  true,
	}
}

// Computed columna calculada por fila: fuera de orden, búsqueda, exportación e
// impresión salvo que se indique.
func Computed(data string) Column {
	c := Make(data)
	c.Computed = true
	c.Orderable = false
	c.Searchable = false
	c.Exportable = false
	c.Printable = false
	return c
}

// AddClass agrega clases CSS.
func (c Column) AddClass(class string) Column {
	c.ClassName = strings.TrimSpace(c.ClassName + " " + class)
	return c
}

func (c Column) SetName(name string) Column   { c.Name = name; return c }
func (c Column) SetTitle(title string) Column { c.Title = title; return c }
func (c Column) SetFooter(f string) Column    { c.Footer = f; return c }
func (c Column) SetOrderable(b bool) Column   { c.Orderable = b; return c }
func (c Column) SetSearchable(b bool) Column  { c.Searchable = b; return c }
func (c Column) SetExportable(b bool) Column  { c.Exportable = b; return c }
func (c Column) SetPrintable(b bool) Column   { c.Printable = b; return c }
func (c Column) SetRaw(b bool) Column         { c.Raw = b; return c }

func humanize(data string) string {
	return titleCaser.String(strings.ReplaceAll(data, "_", " "))
}

// Columns utilidades sobre una lista ordenada de columnas.
type Columns []Column

// Exportable columnas incluidas en exportaciones.
func (cs Columns) Exportable() Columns {
	return cs.filter(func(c Column) bool { return c.Exportable })
}

// Printable columnas incluidas en la vista de impresión.
func (cs Columns) Printable() Columns {
	return cs.filter(func(c Column) bool { return c.Printable })
}

// Titles títulos en orden.
func (cs Columns) Titles() []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Title)
	}
	return out
}

// ByData busca una columna por su clave de datos.
func (cs Columns) ByData(data string) (Column, bool) {
	for _, c := range cs {
		if c.Data == data {
			return c, true
		}
	}
	return Column{}, false
}

func (cs Columns) filter(keep func(Column) bool) Columns {
	out := make(Columns, 0, len(cs))
	for _, c := range cs {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
