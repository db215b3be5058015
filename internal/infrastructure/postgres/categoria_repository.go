package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una categoría y asigna su ID.
func (r *CategoriaRepo) Create(ctx context.Context, c *entity.Categoria) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO categorias (nombre, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id`,
		c.Nombre, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoriaRepo) GetByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	var c entity.Categoria
	err := r.q.QueryRow(ctx,
		`SELECT id, nombre, created_at, updated_at FROM categorias WHERE id = $1`, id,
	).Scan(&c.ID, &c.Nombre, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// List lista categorías por nombre.
func (r *CategoriaRepo) List(ctx context.Context, limit, offset int) ([]*entity.Categoria, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, nombre, created_at, updated_at FROM categorias ORDER BY nombre LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
