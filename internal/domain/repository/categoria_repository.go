package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	Create(ctx context.Context, categoria *entity.Categoria) error
	GetByID(ctx context.Context, id int64) (*entity.Categoria, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Categoria, error)
}
