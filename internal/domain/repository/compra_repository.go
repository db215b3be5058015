package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// CompraFilter criterios de listado de compras. Los campos cero no filtran.
type CompraFilter struct {
	ProveedorID int64
	BodegaID    int64
	Estado      entity.EstadoCompra
}

// CompraRepository define el puerto de persistencia para Compra (DIP).
// Las operaciones actúan solo sobre compras sin borrado lógico; Update puede cambiar el código
// (compra.ID) de la compra identificada por currentID.
type CompraRepository interface {
	Create(ctx context.Context, compra *entity.Compra) error
	GetByID(ctx context.Context, id int64) (*entity.Compra, error)
	Update(ctx context.Context, currentID int64, compra *entity.Compra) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, f CompraFilter, limit, offset int) ([]*entity.Compra, int, error)
}
