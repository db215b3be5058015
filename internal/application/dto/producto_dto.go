package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoInput datos validados de un producto.
type ProductoInput struct {
	Nombre            string
	CategoriaID       int64
	ReferenciaFabrica string
	CodigoBarras      string
	UnidadMedida      string
	Descripcion       string
	Stock             int64
	Precio            decimal.Decimal
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID                int64           `json:"id"`
	Nombre            string          `json:"nombre"`
	CategoriaID       int64           `json:"categoria_id"`
	Categoria         string          `json:"categoria,omitempty"`
	ReferenciaFabrica string          `json:"referencia_fabrica"`
	CodigoBarras      string          `json:"codigo_barras"`
	UnidadMedida      string          `json:"unidad_medida"`
	Descripcion       string          `json:"descripcion"`
	Stock             int64           `json:"stock"`
	Precio            decimal.Decimal `json:"precio"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ExportFile archivo generado para descarga.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
