// Package datatable define descriptores de listados tabulares: columnas, fuente de
// consulta, protocolo de paginación del lado del servidor (DataTables) y metadatos
// de exportación e impresión.
package datatable

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultProperties nombres del modelo y ruta de creación usados por la vista.
type DefaultProperties struct {
	NamePluralModel   string `json:"namePluralModel"`
	NameSingularModel string `json:"nameSingularModel"`
	RouteNew          string `json:"routeNew"`
}

// HTMLBuilder configuración de la tabla que consume el cliente.
type HTMLBuilder struct {
	TableID    string            `json:"tableId"`
	Ajax       string            `json:"ajax"`
	Columns    Columns           `json:"columns"`
	Order      [][2]any          `json:"order"`
	Properties DefaultProperties `json:"properties"`
	Language   string            `json:"language"`
}

// Order criterio de orden solicitado.
type Order struct {
	Column int
	Dir    string // asc | desc
}

// RequestColumn columna declarada por el cliente.
type RequestColumn struct {
	Data       string
	Name       string
	Searchable bool
	Orderable  bool
}

// Request parámetros de una petición de servidor DataTables.
type Request struct {
	Draw    int
	Start   int
	Length  int // -1 = todos
	Search  string
	Order   []Order
	Columns []RequestColumn
}

// DefaultLength filas por página cuando el cliente no indica length.
const DefaultLength = 10

// ParseRequest lee los parámetros con get (p. ej. c.Query de Fiber).
func ParseRequest(get func(key string) string) Request {
	r := Request{
		Draw:   atoi(get("draw"), 0),
		Start:  atoi(get("start"), 0),
		Length: atoi(get("length"), DefaultLength),
		Search: strings.TrimSpace(get("search[value]")),
	}
	if r.Start < 0 {
		r.Start = 0
	}
	if r.Length == 0 || r.Length < -1 {
		r.Length = DefaultLength
	}
	for i := 0; ; i++ {
		col := get(fmt.Sprintf("order[%d][column]", i))
		if col == "" {
			break
		}
		dir := strings.ToLower(get(fmt.Sprintf("order[%d][dir]", i)))
		if dir != "desc" {
			dir = "asc"
		}
		r.Order = append(r.Order, Order{Column: atoi(col, 0), Dir: dir})
	}
	for i := 0; ; i++ {
		data := get(fmt.Sprintf("columns[%d][data]", i))
		if data == "" {
			break
		}
		r.Columns = append(r.Columns, RequestColumn{
			Data:       data,
			Name:       get(fmt.Sprintf("columns[%d][name]", i)),
			Searchable: get(fmt.Sprintf("columns[%d][searchable]", i)) != "false",
			Orderable:  get(fmt.Sprintf("columns[%d][orderable]", i)) != "false",
		})
	}
	return r
}

// Response respuesta del protocolo de servidor DataTables.
type Response struct {
	Draw            int              `json:"draw"`
	RecordsTotal    int              `json:"recordsTotal"`
	RecordsFiltered int              `json:"recordsFiltered"`
	Data            []map[string]any `json:"data"`
}

// Filename nombre base de exportación: {app}_{modelo plural}_{YYYYMMDDHHMMSS}.
func Filename(appName, plural string, now time.Time) string {
	return appName + "_" + plural + "_" + now.Format("20060102150405")
}

func atoi(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
