package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// BodegaRepository define el puerto de persistencia para Bodega (DIP).
type BodegaRepository interface {
	Create(ctx context.Context, bodega *entity.Bodega) error
	GetByID(ctx context.Context, id int64) (*entity.Bodega, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Bodega, error)
}
