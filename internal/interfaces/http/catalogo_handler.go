package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/validation"
)

// ── Categorías ──────────────────────────────────────────────────────────────

// CategoriaHandler maneja las peticiones HTTP de categorías.
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
	v  *validation.Validator
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase, v *validation.Validator) *CategoriaHandler {
	return &CategoriaHandler{uc: uc, v: v}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.CreateCategoriaRequest  true  "nombre"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/categorias [post]
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := h.v.Struct(in, map[string]string{"nombre": "Nombre"}); len(errs) > 0 {
		return validationFailed(c, errs)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría
// @Tags         categorias
// @Produce      json
// @Security     Bearer
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [get]
func (h *CategoriaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "categoría")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Security     Bearer
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  dto.CategoriaListResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Bodegas ─────────────────────────────────────────────────────────────────

// BodegaHandler maneja las peticiones HTTP de bodegas.
type BodegaHandler struct {
	uc *usecase.BodegaUseCase
	v  *validation.Validator
}

// NewBodegaHandler construye el handler.
func NewBodegaHandler(uc *usecase.BodegaUseCase, v *validation.Validator) *BodegaHandler {
	return &BodegaHandler{uc: uc, v: v}
}

// Create godoc
// @Summary      Crear bodega
// @Tags         bodegas
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.CreateBodegaRequest  true  "nombre, direccion"
// @Success      201   {object}  dto.BodegaResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/bodegas [post]
func (h *BodegaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBodegaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := h.v.Struct(in, map[string]string{"nombre": "Nombre", "direccion": "Dirección"}); len(errs) > 0 {
		return validationFailed(c, errs)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener bodega
// @Tags         bodegas
// @Produce      json
// @Security     Bearer
// @Param        id   path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.BodegaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bodegas/{id} [get]
func (h *BodegaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "bodega")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar bodegas
// @Tags         bodegas
// @Produce      json
// @Security     Bearer
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  dto.BodegaListResponse
// @Router       /api/bodegas [get]
func (h *BodegaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Proveedores ─────────────────────────────────────────────────────────────

// ProveedorHandler expone los usuarios con rol proveedor.
type ProveedorHandler struct {
	uc *usecase.UserUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *usecase.UserUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         proveedores
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.UserResponse
// @Router       /api/proveedores [get]
func (h *ProveedorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListProveedores(c.UserContext(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
