package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/datatable"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ProductoUseCase catálogo de productos y su listado tabular (JSON, exportación, impresión).
type ProductoUseCase struct {
	repo    repository.ProductoRepository
	table   *datatable.ProductoDataTable
	writers map[string]datatable.Writer
	printer datatable.Printer
	format  string // formato cuando no se indica uno
	now     func() time.Time
}

// NewProductoUseCase construye el caso de uso. writers indexa los formatos por extensión.
func NewProductoUseCase(
	repo repository.ProductoRepository,
	table *datatable.ProductoDataTable,
	writers map[string]datatable.Writer,
	printer datatable.Printer,
) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, table: table, writers: writers, printer: printer, format: "xlsx", now: time.Now}
}

// WithDefaultFormat fija el formato de exportación por defecto.
func (uc *ProductoUseCase) WithDefaultFormat(format string) *ProductoUseCase {
	if format != "" {
		uc.format = strings.ToLower(format)
	}
	return uc
}

// Create registra un producto.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.ProductoInput) (*dto.ProductoResponse, error) {
	now := uc.now()
	p := &entity.Producto{CreatedAt: now}
	applyProducto(p, in, now)
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto con su categoría. nil si no existe.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductoResponse(p), nil
}

// Update reemplaza los datos del producto.
func (uc *ProductoUseCase) Update(ctx context.Context, id int64, in dto.ProductoInput) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	applyProducto(p, in, uc.now())
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// HTML configuración de la tabla para el cliente.
func (uc *ProductoUseCase) HTML(ajaxURL string) datatable.HTMLBuilder {
	return uc.table.HTML(ajaxURL)
}

// DataTable responde una petición de servidor DataTables sobre la fuente f.
func (uc *ProductoUseCase) DataTable(ctx context.Context, req datatable.Request, f repository.ProductoFilter) (*datatable.Response, error) {
	table := uc.table.WithQuery(f)
	page, err := uc.repo.Query(ctx, table.BuildQuery(req))
	if err != nil {
		return nil, err
	}
	resp, err := table.Response(req.Draw, page)
	if err != nil {
		return nil, fmt.Errorf("datatable productos: %w", err)
	}
	return &resp, nil
}

// Export genera el archivo del listado en format (xlsx, csv, xml); vacío usa el formato por defecto.
func (uc *ProductoUseCase) Export(ctx context.Context, format string, f repository.ProductoFilter) (*dto.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = uc.format
	}
	w, ok := uc.writers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	table := uc.table.WithQuery(f)
	items, err := uc.all(ctx, f)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := w.Write(ctx, table.ExportDocument(items), table, &buf); err != nil {
		return nil, fmt.Errorf("exportar productos: %w", err)
	}
	return &dto.ExportFile{
		Filename:    table.Filename() + "." + w.Format(),
		ContentType: w.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}

// Print genera la vista de impresión en PDF.
func (uc *ProductoUseCase) Print(ctx context.Context, f repository.ProductoFilter) (*dto.ExportFile, error) {
	if uc.printer == nil {
		return nil, fmt.Errorf("%w: impresión no configurada", domain.ErrUnsupportedFormat)
	}
	table := uc.table.WithQuery(f)
	items, err := uc.all(ctx, f)
	if err != nil {
		return nil, err
	}
	content, err := uc.printer.Print(ctx, table.PrintDocument(items))
	if err != nil {
		return nil, fmt.Errorf("imprimir productos: %w", err)
	}
	return &dto.ExportFile{
		Filename:    table.Filename() + ".pdf",
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// all lee la fuente completa en el orden por defecto del listado.
func (uc *ProductoUseCase) all(ctx context.Context, f repository.ProductoFilter) ([]*entity.Producto, error) {
	q := uc.table.WithQuery(f).BuildQuery(datatable.Request{Length: -1})
	page, err := uc.repo.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func applyProducto(p *entity.Producto, in dto.ProductoInput, now time.Time) {
	if p.CategoriaID != in.CategoriaID {
		p.Categoria = nil
	}
	p.Nombre = in.Nombre
	p.CategoriaID = in.CategoriaID
	p.ReferenciaFabrica = in.ReferenciaFabrica
	p.CodigoBarras = in.CodigoBarras
	p.UnidadMedida = in.UnidadMedida
	p.Descripcion = in.Descripcion
	p.Stock = in.Stock
	p.Precio = in.Precio
	p.UpdatedAt = now
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	out := &dto.ProductoResponse{
		ID:                p.ID,
		Nombre:            p.Nombre,
		CategoriaID:       p.CategoriaID,
		ReferenciaFabrica: p.ReferenciaFabrica,
		CodigoBarras:      p.CodigoBarras,
		UnidadMedida:      p.UnidadMedida,
		Descripcion:       p.Descripcion,
		Stock:             p.Stock,
		Precio:            p.Precio,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.Categoria != nil {
		out.Categoria = p.Categoria.Nombre
	}
	return out
}
