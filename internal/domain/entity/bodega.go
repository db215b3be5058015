package entity

import "time"

// Bodega lugar donde se reciben las compras.
type Bodega struct {
	ID        int64
	Nombre    string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}
