package dto

import "time"

// CreateBodegaRequest entrada para crear una bodega.
type CreateBodegaRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Direccion string `json:"direccion" validate:"omitempty,max=255"`
}

// BodegaResponse salida de una bodega.
type BodegaResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Direccion string    `json:"direccion"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BodegaListResponse lista paginada de bodegas.
type BodegaListResponse struct {
	Items []BodegaResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
