package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ProductoFilter fuente de consulta de un listado de productos. El valor cero no filtra.
type ProductoFilter struct {
	CategoriaID  int64
	IDs          []int64
	SoloConStock bool
}

// IsZero indica si el filtro es el listado completo.
func (f ProductoFilter) IsZero() bool {
	return f.CategoriaID == 0 && len(f.IDs) == 0 && !f.SoloConStock
}

// ProductoQuery consulta paginada sobre un ProductoFilter.
// OrderBy y SearchColumns usan nombres de columna de listado ("nombre", "categoria.nombre").
type ProductoQuery struct {
	Filter        ProductoFilter
	Search        string
	SearchColumns []string
	OrderBy       string
	Desc          bool
	Limit         int // <= 0: sin límite
	Offset        int
}

// ProductoPage resultado de una consulta paginada.
type ProductoPage struct {
	Items    []*entity.Producto
	Total    int // registros del filtro sin búsqueda
	Filtered int // registros tras la búsqueda
}

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(ctx context.Context, producto *entity.Producto) error
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	Update(ctx context.Context, producto *entity.Producto) error
	Delete(ctx context.Context, id int64) error
	Query(ctx context.Context, q ProductoQuery) (*ProductoPage, error)
}
