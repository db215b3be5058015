package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// productoListColumns nombres de columna de listado → expresión SQL. Solo estas se ordenan o buscan.
var productoListColumns = map[string]string{
	"id":                 "p.id",
	"nombre":             "p.nombre",
	"categoria.nombre":   "c.nombre",
	"referencia_fabrica": "p.referencia_fabrica",
	"codigo_barras":      "COALESCE(p.codigo_barras, '')",
	"unidad_medida":      "p.unidad_medida",
	"descripcion":        "p.descripcion",
	"stock":              "p.stock",
	"precio":             "p.precio",
	"created_at":         "p.created_at",
	"updated_at":         "p.updated_at",
}

const productoSelect = `
	SELECT p.id, p.nombre, p.categoria_id, p.referencia_fabrica, COALESCE(p.codigo_barras, ''), p.unidad_medida,
	       p.descripcion, p.stock, p.precio, p.created_at, p.updated_at,
	       c.id, c.nombre, c.created_at, c.updated_at
	FROM productos p
	JOIN categorias c ON c.id = p.categoria_id`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un producto y asigna su ID.
func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, categoria_id, referencia_fabrica, codigo_barras, unidad_medida, descripcion, stock, precio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Nombre, p.CategoriaID, p.ReferenciaFabrica, nullIfEmpty(p.CodigoBarras), p.UnidadMedida,
		p.Descripcion, p.Stock, p.Precio, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return productoWriteErr("insert producto", err)
	}
	return nil
}

// GetByID obtiene un producto con su categoría.
func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	p, err := scanProducto(r.q.QueryRow(ctx, productoSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// Update actualiza los datos del producto.
func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, categoria_id = $3, referencia_fabrica = $4, codigo_barras = $5,
		       unidad_medida = $6, descripcion = $7, stock = $8, precio = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.CategoriaID, p.ReferenciaFabrica, nullIfEmpty(p.CodigoBarras),
		p.UnidadMedida, p.Descripcion, p.Stock, p.Precio, p.UpdatedAt,
	)
	if err != nil {
		return productoWriteErr("update producto", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return productoWriteErr("delete producto", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Query consulta paginada con búsqueda y orden sobre columnas de listado conocidas.
func (r *ProductoRepo) Query(ctx context.Context, q repository.ProductoQuery) (*repository.ProductoPage, error) {
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	var where []string
	if q.Filter.CategoriaID != 0 {
		where = append(where, "p.categoria_id = "+arg(q.Filter.CategoriaID))
	}
	if len(q.Filter.IDs) > 0 {
		where = append(where, "p.id = ANY("+arg(q.Filter.IDs)+")")
	}
	if q.Filter.SoloConStock {
		where = append(where, "p.stock > 0")
	}
	from := ` FROM productos p JOIN categorias c ON c.id = p.categoria_id`
	base := whereClause(where)

	page := &repository.ProductoPage{}
	if err := r.q.QueryRow(ctx, `SELECT count(*)`+from+base, args...).Scan(&page.Total); err != nil {
		return nil, fmt.Errorf("count productos: %w", err)
	}

	if q.Search != "" {
		var ors []string
		pattern := ""
		for _, name := range q.SearchColumns {
			expr, ok := productoListColumns[name]
			if !ok {
				continue
			}
			if pattern == "" {
				pattern = arg("%" + escapeLike(q.Search) + "%")
			}
			ors = append(ors, expr+"::text ILIKE "+pattern)
		}
		if len(ors) > 0 {
			where = append(where, "("+strings.Join(ors, " OR ")+")")
		}
	}
	filtered := whereClause(where)

	page.Filtered = page.Total
	if filtered != base {
		if err := r.q.QueryRow(ctx, `SELECT count(*)`+from+filtered, args...).Scan(&page.Filtered); err != nil {
			return nil, fmt.Errorf("count productos filtrados: %w", err)
		}
	}

	order, ok := productoListColumns[q.OrderBy]
	if !ok {
		order = "p.id"
	}
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	query := productoSelect + filtered + fmt.Sprintf(" ORDER BY %s %s, p.id ASC", order, dir)
	if q.Limit > 0 {
		query += " LIMIT " + arg(q.Limit)
	}
	if q.Offset > 0 {
		query += " OFFSET " + arg(q.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		page.Items = append(page.Items, p)
	}
	return page, rows.Err()
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	var c entity.Categoria
	if err := row.Scan(
		&p.ID, &p.Nombre, &p.CategoriaID, &p.ReferenciaFabrica, &p.CodigoBarras, &p.UnidadMedida,
		&p.Descripcion, &p.Stock, &p.Precio, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Nombre, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Categoria = &c
	return &p, nil
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// escapeLike neutraliza los comodines de LIKE en el texto buscado.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func productoWriteErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: categoría inexistente", domain.ErrInvalidInput)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
