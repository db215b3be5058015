package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/request"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// CompraHandler maneja las peticiones HTTP de compras. La entrada de escritura llega
// validada por FormRequestMiddleware(CompraStoreRequest).
type CompraHandler struct {
	uc *usecase.CompraUseCase
}

// NewCompraHandler construye el handler.
func NewCompraHandler(uc *usecase.CompraUseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// List godoc
// @Summary      Listar compras
// @Tags         compras
// @Produce      json
// @Security     Bearer
// @Param        proveedor_id  query  int     false  "Filtrar por proveedor"
// @Param        bodega_id     query  int     false  "Filtrar por bodega"
// @Param        estado        query  string  false  "PENDIENTE | APROBADA | RECIBIDA | ANULADA"
// @Param        limit         query  int     false  "Límite (default 20, max 100)"
// @Param        offset        query  int     false  "Offset"
// @Success      200  {object}  dto.CompraListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/compras [get]
func (h *CompraHandler) List(c *fiber.Ctx) error {
	f := repository.CompraFilter{
		ProveedorID: int64(c.QueryInt("proveedor_id")),
		BodegaID:    int64(c.QueryInt("bodega_id")),
		Estado:      entity.EstadoCompra(strings.ToUpper(c.Query("estado"))),
	}
	out, err := h.uc.List(c.UserContext(), f, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar compra
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  object  true  "id, fecha, valor_total, proveedor_id, bodega_id, estado"
// @Success      201   {object}  dto.CompraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/compras [post]
func (h *CompraHandler) Create(c *fiber.Ctx) error {
	in, err := request.BindCompra(GetInput(c))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener compra
// @Tags         compras
// @Produce      json
// @Security     Bearer
// @Param        id   path  int  true  "Código de la compra"
// @Success      200  {object}  dto.CompraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [get]
func (h *CompraHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "compra")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar compra
// @Description  El id de la ruta prevalece sobre el del cuerpo.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  int     true  "Código de la compra"
// @Param        body  body  object  true  "fecha, valor_total, proveedor_id, bodega_id, estado"
// @Success      200   {object}  dto.CompraResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/compras/{id} [patch]
func (h *CompraHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	in, err := request.BindCompra(GetInput(c))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Anular compra (borrado lógico)
// @Tags         compras
// @Security     Bearer
// @Param        id   path  int  true  "Código de la compra"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [delete]
func (h *CompraHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
