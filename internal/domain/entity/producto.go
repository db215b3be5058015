package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un ítem del catálogo. Pertenece a una Categoria.
type Producto struct {
	ID                int64
	Nombre            string
	CategoriaID       int64
	Categoria         *Categoria // cargada en listados; nil si no se consultó
	ReferenciaFabrica string
	CodigoBarras      string // vacío = sin código
	UnidadMedida      string
	Descripcion       string
	Stock             int64
	Precio            decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
