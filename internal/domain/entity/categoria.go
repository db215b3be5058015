package entity

import "time"

// Categoria agrupa productos del catálogo.
type Categoria struct {
	ID        int64
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
