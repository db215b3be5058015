package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompraInput datos validados de una compra (POST, PATCH o PUT).
type CompraInput struct {
	ID          int64
	Fecha       time.Time
	ValorTotal  decimal.Decimal
	ProveedorID int64
	BodegaID    int64
	Estado      string // vacío = sin estado
}

// CompraResponse salida de una compra.
type CompraResponse struct {
	ID          int64           `json:"id"`
	Fecha       time.Time       `json:"fecha"`
	ValorTotal  decimal.Decimal `json:"valor_total"`
	ProveedorID int64           `json:"proveedor_id"`
	BodegaID    int64           `json:"bodega_id"`
	Estado      *string         `json:"estado"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CompraListResponse lista paginada de compras.
type CompraListResponse struct {
	Items []CompraResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
