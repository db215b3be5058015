package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoCompra estados posibles de una compra.
type EstadoCompra string

const (
	EstadoCompraPendiente EstadoCompra = "PENDIENTE"
	EstadoCompraAprobada  EstadoCompra = "APROBADA"
	EstadoCompraRecibida  EstadoCompra = "RECIBIDA"
	EstadoCompraAnulada   EstadoCompra = "ANULADA"
)

// EstadosCompra devuelve los valores válidos en orden de ciclo de vida.
func EstadosCompra() []EstadoCompra {
	return []EstadoCompra{EstadoCompraPendiente, EstadoCompraAprobada, EstadoCompraRecibida, EstadoCompraAnulada}
}

// Compra representa una orden de compra a un proveedor, recibida en una bodega.
// El ID lo asigna el usuario (código de compra) y es único entre compras no eliminadas.
type Compra struct {
	ID          int64
	Fecha       time.Time
	ValorTotal  decimal.Decimal
	ProveedorID int64 // users.id
	BodegaID    int64
	Estado      *EstadoCompra // nil = sin estado
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // borrado lógico
}

// Eliminada indica si la compra tiene borrado lógico.
func (c *Compra) Eliminada() bool { return c.DeletedAt != nil }
