package datatable

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const (
	productoTableID = "Productos-table"
	productoTitle   = "Lista de Productos"
	timestampLayout = "2006-01-02 15:04:05"

	maxColumnWidth = 60
)

var (
	actionTmpl = template.Must(template.New("action").Parse(
		`<a role="button" href="/producto/{{.ID}}/edit" class="btn btn-sm btn-outline-info" data-toggle="tooltip" data-animation="true" data-placement="top" title="Editar"><i class="fas fa-user-edit"></i></a> ` +
			`<a role="button" href="/producto/{{.ID}}" class="btn btn-sm btn-outline-danger" data-toggle="tooltip" data-animation="true" data-placement="top" title="Ver"><i class="fas fa-eye"></i></a>`))
	categoriaTmpl = template.Must(template.New("categoria").Parse(
		`<a class="badge badge-info" href="/categoria/{{.ID}}" data-toggle="tooltip" data-animation="true" data-placement="top" title="Ver">{{.Nombre}}</a>`))
)

// ProductoDataTable listado de productos.
type ProductoDataTable struct {
	appName string
	company string
	filter  repository.ProductoFilter
	now     func() time.Time
}

// NewProductoDataTable crea el descriptor. appName y company alimentan nombre de archivo y metadatos.
func NewProductoDataTable(appName, company string) *ProductoDataTable {
	return &ProductoDataTable{appName: appName, company: company, now: time.Now}
}

// WithQuery devuelve una copia con la fuente de consulta indicada.
func (t *ProductoDataTable) WithQuery(f repository.ProductoFilter) *ProductoDataTable {
	cp := *t
	cp.filter = f
	return &cp
}

// WithClock fija el reloj (tests).
func (t *ProductoDataTable) WithClock(now func() time.Time) *ProductoDataTable {
	cp := *t
	cp.now = now
	return &cp
}

// Query fuente de consulta; sin WithQuery es el listado completo.
func (t *ProductoDataTable) Query() repository.ProductoFilter { return t.filter }

// Properties nombres del modelo y ruta de creación.
func (t *ProductoDataTable) Properties() DefaultProperties {
	return DefaultProperties{
		NamePluralModel:   "Productos",
		NameSingularModel: "Producto",
		RouteNew:          "/producto/create",
	}
}

// Title título de hoja, documento e impresión.
func (t *ProductoDataTable) Title() string { return productoTitle }

// Filename nombre base del archivo exportado (sin extensión).
func (t *ProductoDataTable) Filename() string {
	return Filename(t.appName, t.Properties().NamePluralModel, t.now())
}

// Columns columnas en orden de presentación.
func (t *ProductoDataTable) Columns() Columns {
	return Columns{
		Computed("action").
			SetTitle("Acciones").
			AddClass("text-center").
			SetFooter("Acciones").
			SetRaw(true),
		Make("id").
			SetTitle("#").
			AddClass("d-none d-md-table-cell text-center"),
		Make("nombre"),
		Computed("categoria").
			SetName("categoria.nombre").
			SetTitle("Categoria").
			SetOrderable(true).
			SetSearchable(true).
			SetExportable(true).
			SetPrintable(true).
			SetRaw(true),
		Make("referencia_fabrica"),
		Make("codigo_barras"),
		Make("unidad_medida"),
		Make("descripcion"),
		Make("stock"),
		Make("precio"),
		Make("created_at").SetTitle("Creado"),
		Make("updated_at").SetTitle("Actualizado"),
	}
}

// HTML configuración de la tabla para el cliente.
func (t *ProductoDataTable) HTML(ajaxURL string) HTMLBuilder {
	return HTMLBuilder{
		TableID:    productoTableID,
		Ajax:       ajaxURL,
		Columns:    t.Columns(),
		Order:      [][2]any{{1, "asc"}},
		Properties: t.Properties(),
		Language:   "es",
	}
}

// BuildQuery traduce la petición DataTables a una consulta sobre la fuente.
// Solo se ordena y busca por columnas declaradas como tales.
func (t *ProductoDataTable) BuildQuery(req Request) repository.ProductoQuery {
	cols := t.Columns()
	q := repository.ProductoQuery{
		Filter:  t.filter,
		Search:  req.Search,
		OrderBy: cols[1].Name,
		Offset:  req.Start,
		Limit:   req.Length,
	}
	if req.Length < 0 {
		q.Limit = 0
	}
	if len(req.Order) > 0 {
		o := req.Order[0]
		if o.Column >= 0 && o.Column < len(cols) && cols[o.Column].Orderable {
			q.OrderBy = cols[o.Column].Name
			q.Desc = o.Dir == "desc"
		}
	}
	if q.Search != "" {
		for i, c := range cols {
			if !c.Searchable {
				continue
			}
			if i < len(req.Columns) && !req.Columns[i].Searchable {
				continue
			}
			q.SearchColumns = append(q.SearchColumns, c.Name)
		}
	}
	return q
}

// Response arma la respuesta DataTables con las columnas calculadas.
func (t *ProductoDataTable) Response(draw int, page *repository.ProductoPage) (Response, error) {
	resp := Response{Draw: draw, Data: make([]map[string]any, 0)}
	if page == nil {
		return resp, nil
	}
	resp.RecordsTotal = page.Total
	resp.RecordsFiltered = page.Filtered
	for _, p := range page.Items {
		row, err := t.row(p)
		if err != nil {
			return Response{}, err
		}
		resp.Data = append(resp.Data, row)
	}
	return resp, nil
}

func (t *ProductoDataTable) row(p *entity.Producto) (map[string]any, error) {
	action, err := render(actionTmpl, p)
	if err != nil {
		return nil, err
	}
	categoria := ""
	if p.Categoria != nil {
		if categoria, err = render(categoriaTmpl, p.Categoria); err != nil {
			return nil, err
		}
	}
	return map[string]any{
		"action":             action,
		"id":                 p.ID,
		"nombre":             p.Nombre,
		"categoria":          categoria,
		"referencia_fabrica": p.ReferenciaFabrica,
		"codigo_barras":      p.CodigoBarras,
		"unidad_medida":      p.UnidadMedida,
		"descripcion":        p.Descripcion,
		"stock":              p.Stock,
		"precio":             p.Precio.StringFixed(2),
		"created_at":         formatTime(p.CreatedAt),
		"updated_at":         formatTime(p.UpdatedAt),
	}, nil
}

// plain valores de texto sin marcado, por clave de columna.
func plain(p *entity.Producto) map[string]string {
	categoria := ""
	if p.Categoria != nil {
		categoria = p.Categoria.Nombre
	}
	return map[string]string{
		"id":                 strconv.FormatInt(p.ID, 10),
		"nombre":             p.Nombre,
		"categoria":          categoria,
		"referencia_fabrica": p.ReferenciaFabrica,
		"codigo_barras":      p.CodigoBarras,
		"unidad_medida":      p.UnidadMedida,
		"descripcion":        p.Descripcion,
		"stock":              strconv.FormatInt(p.Stock, 10),
		"precio":             p.Precio.StringFixed(2),
		"created_at":         formatTime(p.CreatedAt),
		"updated_at":         formatTime(p.UpdatedAt),
	}
}

// ExportDocument filas planas de las columnas exportables.
func (t *ProductoDataTable) ExportDocument(items []*entity.Producto) ExportDocument {
	cols := t.Columns().Exportable()
	return ExportDocument{
		SheetTitle: t.Title(),
		Headers:    cols.Titles(),
		Rows:       table(cols, items),
	}
}

// PrintDocument filas planas de las columnas imprimibles.
func (t *ProductoDataTable) PrintDocument(items []*entity.Producto) PrintDocument {
	cols := t.Columns().Printable()
	return PrintDocument{
		Title:       t.Title(),
		Subtitle:    fmt.Sprintf("%s · %d %s", t.appName, len(items), t.Properties().NamePluralModel),
		Headers:     cols.Titles(),
		Rows:        table(cols, items),
		GeneratedAt: t.now(),
	}
}

// BeforeExport completa los metadatos del libro.
func (t *ProductoDataTable) BeforeExport(ev *BeforeExportEvent) {
	if ev.Properties == nil {
		ev.Properties = &DocumentProperties{}
	}
	ev.Properties.Creator = t.appName
	ev.Properties.Title = t.Title()
	ev.Properties.Subject = t.Properties().NamePluralModel
	ev.Properties.Description = t.Title() + " exportada desde " + t.appName
	ev.Properties.Company = t.company
	ev.Properties.Created = t.now()
}

// AfterSheet resalta y fija el encabezado, ajusta anchos y activa el autofiltro.
func (t *ProductoDataTable) AfterSheet(ev *AfterSheetEvent) error {
	if err := ev.Sheet.StyleHeader(); err != nil {
		return fmt.Errorf("estilo de encabezado: %w", err)
	}
	if err := ev.Sheet.FreezeHeader(); err != nil {
		return fmt.Errorf("fijar encabezado: %w", err)
	}
	for i, w := range ColumnWidths(ev.Headers, ev.Rows) {
		if err := ev.Sheet.SetColumnWidth(i, w); err != nil {
			return fmt.Errorf("ancho de columna %d: %w", i, err)
		}
	}
	if err := ev.Sheet.AutoFilter(); err != nil {
		return fmt.Errorf("autofiltro: %w", err)
	}
	return nil
}

// ColumnWidths ancho sugerido por columna según el texto más largo.
func ColumnWidths(headers []string, rows [][]string) []float64 {
	widths := make([]float64, len(headers))
	measure := func(i int, s string) {
		w := float64(utf8.RuneCountInString(s) + 2)
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		if w > widths[i] {
			widths[i] = w
		}
	}
	for i, h := range headers {
		measure(i, h)
	}
	for _, r := range rows {
		for i := 0; i < len(r) && i < len(widths); i++ {
			measure(i, r[i])
		}
	}
	return widths
}

func table(cols Columns, items []*entity.Producto) [][]string {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		values := plain(p)
		row := make([]string, 0, len(cols))
		for _, c := range cols {
			row = append(row, values[c.Data])
		}
		rows = append(rows, row)
	}
	return rows
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timestampLayout)
}

var _ Hooks = (*ProductoDataTable)(nil)
