package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// BodegaUseCase casos de uso de bodegas.
type BodegaUseCase struct {
	repo repository.BodegaRepository
}

// NewBodegaUseCase construye el caso de uso.
func NewBodegaUseCase(repo repository.BodegaRepository) *BodegaUseCase {
	return &BodegaUseCase{repo: repo}
}

// Create crea una nueva bodega.
func (uc *BodegaUseCase) Create(ctx context.Context, in dto.CreateBodegaRequest) (*dto.BodegaResponse, error) {
	now := time.Now()
	b := &entity.Bodega{
		Nombre:    strings.TrimSpace(in.Nombre),
		Direccion: strings.TrimSpace(in.Direccion),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBodegaResponse(b), nil
}

// GetByID obtiene una bodega por ID.
func (uc *BodegaUseCase) GetByID(ctx context.Context, id int64) (*dto.BodegaResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return toBodegaResponse(b), nil
}

// List lista bodegas con paginación.
func (uc *BodegaUseCase) List(ctx context.Context, limit, offset int) (*dto.BodegaListResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BodegaResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBodegaResponse(b))
	}
	return &dto.BodegaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toBodegaResponse(b *entity.Bodega) *dto.BodegaResponse {
	return &dto.BodegaResponse{
		ID:        b.ID,
		Nombre:    b.Nombre,
		Direccion: b.Direccion,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
