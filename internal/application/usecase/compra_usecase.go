package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// CompraUseCase casos de uso de compras. La entrada llega ya validada por CompraStoreRequest.
type CompraUseCase struct {
	repo repository.CompraRepository
	now  func() time.Time
}

// NewCompraUseCase construye el caso de uso.
func NewCompraUseCase(repo repository.CompraRepository) *CompraUseCase {
	return &CompraUseCase{repo: repo, now: time.Now}
}

// Create registra una compra con el código indicado.
func (uc *CompraUseCase) Create(ctx context.Context, in dto.CompraInput) (*dto.CompraResponse, error) {
	now := uc.now()
	compra := &entity.Compra{
		ID:          in.ID,
		Fecha:       in.Fecha,
		ValorTotal:  in.ValorTotal,
		ProveedorID: in.ProveedorID,
		BodegaID:    in.BodegaID,
		Estado:      estadoFrom(in.Estado),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, compra); err != nil {
		return nil, err
	}
	return toCompraResponse(compra), nil
}

// GetByID obtiene una compra vigente. nil si no existe.
func (uc *CompraUseCase) GetByID(ctx context.Context, id int64) (*dto.CompraResponse, error) {
	compra, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if compra == nil {
		return nil, nil
	}
	return toCompraResponse(compra), nil
}

// Update reemplaza los datos de la compra id. in.ID distinto de cero cambia el código.
func (uc *CompraUseCase) Update(ctx context.Context, id int64, in dto.CompraInput) (*dto.CompraResponse, error) {
	compra, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if compra == nil {
		return nil, domain.ErrNotFound
	}
	if in.ID != 0 {
		compra.ID = in.ID
	}
	compra.Fecha = in.Fecha
	compra.ValorTotal = in.ValorTotal
	compra.ProveedorID = in.ProveedorID
	compra.BodegaID = in.BodegaID
	compra.Estado = estadoFrom(in.Estado)
	compra.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, id, compra); err != nil {
		return nil, err
	}
	return toCompraResponse(compra), nil
}

// Delete aplica borrado lógico.
func (uc *CompraUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.SoftDelete(ctx, id)
}

// List lista compras vigentes con paginación.
func (uc *CompraUseCase) List(ctx context.Context, f repository.CompraFilter, limit, offset int) (*dto.CompraListResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	list, total, err := uc.repo.List(ctx, f, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompraResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompraResponse(c))
	}
	return &dto.CompraListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func estadoFrom(s string) *entity.EstadoCompra {
	if s == "" {
		return nil
	}
	e := entity.EstadoCompra(s)
	return &e
}

func toCompraResponse(c *entity.Compra) *dto.CompraResponse {
	out := &dto.CompraResponse{
		ID:          c.ID,
		Fecha:       c.Fecha,
		ValorTotal:  c.ValorTotal,
		ProveedorID: c.ProveedorID,
		BodegaID:    c.BodegaID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Estado != nil {
		s := string(*c.Estado)
		out.Estado = &s
	}
	return out
}
