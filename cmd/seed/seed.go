package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/pkg/sanitize"
)

// productoRow fila ya normalizada del CSV.
type productoRow struct {
	Nombre            string
	Categoria         string
	ReferenciaFabrica string
	CodigoBarras      string
	UnidadMedida      string
	Descripcion       string
	Stock             int64
	Precio            decimal.Decimal
}

const csvColumns = 8

var (
	nameFilter, _  = sanitize.Parse("trim|capitalize")
	refFilter, _   = sanitize.Parse("trim|uppercase")
	unitFilter, _  = sanitize.Parse("trim|lowercase")
	digitFilter, _ = sanitize.Parse("trim|digit")
	priceFilter, _ = sanitize.Parse("decimal")
)

// readProductos lee el CSV (ya en UTF-8). La primera fila es cabecera; las filas sin nombre
// o sin categoría se omiten.
func readProductos(r io.Reader) ([]productoRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = csvColumns
	cr.TrimLeadingSpace = true

	var rows []productoRow
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 {
			continue
		}
		row, ok, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func parseRow(rec []string) (productoRow, bool, error) {
	row := productoRow{
		Nombre:            strings.TrimSpace(rec[0]),
		Categoria:         nameFilter.Apply(rec[1]),
		ReferenciaFabrica: refFilter.Apply(rec[2]),
		CodigoBarras:      digitFilter.Apply(rec[3]),
		UnidadMedida:      unitFilter.Apply(rec[4]),
		Descripcion:       strings.TrimSpace(rec[5]),
	}
	if row.Nombre == "" || row.Categoria == "" {
		return row, false, nil
	}
	if row.UnidadMedida == "" {
		row.UnidadMedida = "und"
	}
	if s := strings.TrimSpace(rec[6]); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 {
			return row, false, fmt.Errorf("stock inválido %q", s)
		}
		row.Stock = n
	}
	if s := priceFilter.Apply(rec[7]); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return row, false, fmt.Errorf("precio inválido %q", rec[7])
		}
		row.Precio = d.Round(2)
	}
	return row, true, nil
}

func categorias(rows []productoRow) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		if !seen[r.Categoria] {
			seen[r.Categoria] = true
			out = append(out, r.Categoria)
		}
	}
	sort.Strings(out)
	return out
}

// writeSeed escribe categorías primero y luego productos con subconsulta a la categoría.
// Es idempotente: las categorías y los códigos de barras repetidos no se duplican.
func writeSeed(w io.Writer, source string, rows []productoRow) error {
	var b strings.Builder
	b.WriteString("-- Catálogo inicial de productos\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", source)

	cats := categorias(rows)
	if len(cats) > 0 {
		b.WriteString("-- 1. Categorías\n")
		b.WriteString("INSERT INTO categorias (nombre) VALUES\n")
		for i, c := range cats {
			sep := ","
			if i == len(cats)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "  (%s)%s\n", quote(c), sep)
		}
		b.WriteString("ON CONFLICT (nombre) DO NOTHING;\n\n")
	}

	b.WriteString("-- 2. Productos\n")
	for _, r := range rows {
		b.WriteString("INSERT INTO productos (nombre, categoria_id, referencia_fabrica, codigo_barras, unidad_medida, descripcion, stock, precio)\n")
		fmt.Fprintf(&b, "SELECT %s, id, %s, %s, %s, %s, %d, %s FROM categorias WHERE nombre = %s\n",
			quote(r.Nombre), quote(r.ReferenciaFabrica), nullable(r.CodigoBarras), quote(r.UnidadMedida),
			quote(r.Descripcion), r.Stock, r.Precio.StringFixed(2), quote(r.Categoria))
		if r.CodigoBarras != "" {
			b.WriteString("ON CONFLICT (codigo_barras) WHERE codigo_barras IS NOT NULL DO NOTHING")
		}
		b.WriteString(";\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return quote(s)
}
