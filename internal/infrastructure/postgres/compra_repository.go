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

var _ repository.CompraRepository = (*CompraRepo)(nil)

const compraColumns = `id, fecha, valor_total, proveedor_id, bodega_id, estado, created_at, updated_at, deleted_at`

// CompraRepo implementación del puerto CompraRepository sobre PostgreSQL (usable con pool o tx).
// Todas las operaciones actúan solo sobre compras vigentes (deleted_at IS NULL).
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

// Create persiste una compra nueva.
func (r *CompraRepo) Create(ctx context.Context, c *entity.Compra) error {
	query := `
		INSERT INTO compras (id, fecha, valor_total, proveedor_id, bodega_id, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Fecha, c.ValorTotal, c.ProveedorID, c.BodegaID, estadoParam(c.Estado), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return compraWriteErr("insert compra", err)
	}
	return nil
}

// GetByID obtiene una compra vigente por su código.
func (r *CompraRepo) GetByID(ctx context.Context, id int64) (*entity.Compra, error) {
	query := `SELECT ` + compraColumns + ` FROM compras WHERE id = $1 AND deleted_at IS NULL`
	c, err := scanCompra(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return c, nil
}

// Update actualiza la compra vigente con código currentID; c.ID puede ser un código nuevo.
func (r *CompraRepo) Update(ctx context.Context, currentID int64, c *entity.Compra) error {
	query := `
		UPDATE compras SET id = $2, fecha = $3, valor_total = $4, proveedor_id = $5, bodega_id = $6, estado = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(ctx, query,
		currentID, c.ID, c.Fecha, c.ValorTotal, c.ProveedorID, c.BodegaID, estadoParam(c.Estado), c.UpdatedAt,
	)
	if err != nil {
		return compraWriteErr("update compra", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la compra como eliminada y libera su código.
func (r *CompraRepo) SoftDelete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE compras SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete compra: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista compras vigentes, más recientes primero, y devuelve el total del filtro.
func (r *CompraRepo) List(ctx context.Context, f repository.CompraFilter, limit, offset int) ([]*entity.Compra, int, error) {
	where := []string{"deleted_at IS NULL"}
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.ProveedorID != 0 {
		add("proveedor_id = $%d", f.ProveedorID)
	}
	if f.BodegaID != 0 {
		add("bodega_id = $%d", f.BodegaID)
	}
	if f.Estado != "" {
		add("estado = $%d", string(f.Estado))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM compras WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count compras: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM compras WHERE %s ORDER BY fecha DESC, id DESC LIMIT $%d OFFSET $%d`,
		compraColumns, cond, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Compra
	for rows.Next() {
		c, err := scanCompra(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func scanCompra(row pgx.Row) (*entity.Compra, error) {
	var c entity.Compra
	var estado *string
	if err := row.Scan(&c.ID, &c.Fecha, &c.ValorTotal, &c.ProveedorID, &c.BodegaID, &estado,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
		return nil, err
	}
	if estado != nil {
		e := entity.EstadoCompra(*estado)
		c.Estado = &e
	}
	return &c, nil
}

func estadoParam(e *entity.EstadoCompra) *string {
	if e == nil {
		return nil
	}
	s := string(*e)
	return &s
}

func compraWriteErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: proveedor o bodega inexistente", domain.ErrInvalidInput)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
