package dto

import "time"

// CreateCategoriaRequest entrada para crear una categoría.
type CreateCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=120"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoriaListResponse lista paginada de categorías.
type CategoriaListResponse struct {
	Items []CategoriaResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
