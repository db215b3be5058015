package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso de categorías.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoriaUseCase) Create(ctx context.Context, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	now := time.Now()
	c := &entity.Categoria{Nombre: strings.TrimSpace(in.Nombre), CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// GetByID obtiene una categoría. nil si no existe.
func (uc *CategoriaUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// List lista categorías con paginación.
func (uc *CategoriaUseCase) List(ctx context.Context, limit, offset int) (*dto.CategoriaListResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return &dto.CategoriaListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}
