package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.BodegaRepository = (*BodegaRepo)(nil)

// BodegaRepo implementación del puerto BodegaRepository sobre PostgreSQL.
type BodegaRepo struct {
	q Querier
}

// NewBodegaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBodegaRepository(q Querier) *BodegaRepo {
	return &BodegaRepo{q: q}
}

// Create persiste una bodega y asigna su ID.
func (r *BodegaRepo) Create(ctx context.Context, b *entity.Bodega) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO bodegas (nombre, direccion, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		b.Nombre, b.Direccion, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("insert bodega: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *BodegaRepo) GetByID(ctx context.Context, id int64) (*entity.Bodega, error) {
	var b entity.Bodega
	err := r.q.QueryRow(ctx,
		`SELECT id, nombre, direccion, created_at, updated_at FROM bodegas WHERE id = $1`, id,
	).Scan(&b.ID, &b.Nombre, &b.Direccion, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bodega: %w", err)
	}
	return &b, nil
}

// List lista bodegas por nombre.
func (r *BodegaRepo) List(ctx context.Context, limit, offset int) ([]*entity.Bodega, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, nombre, direccion, created_at, updated_at FROM bodegas ORDER BY nombre LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bodegas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bodega
	for rows.Next() {
		var b entity.Bodega
		if err := rows.Scan(&b.ID, &b.Nombre, &b.Direccion, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bodega: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
