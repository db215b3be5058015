package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/datatable"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/request"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ProductoHandler maneja las peticiones HTTP de productos: CRUD, tabla de servidor,
// exportación e impresión.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// DataTable godoc
// @Summary      Listado de productos (DataTables, procesamiento en servidor)
// @Tags         productos
// @Produce      json
// @Security     Bearer
// @Param        draw            query  int     false  "Contador de la petición"
// @Param        start           query  int     false  "Primer registro"
// @Param        length          query  int     false  "Registros por página (-1 = todos)"
// @Param        search[value]   query  string  false  "Búsqueda global"
// @Param        categoria_id    query  int     false  "Filtrar por categoría"
// @Param        solo_con_stock  query  bool    false  "Solo productos con stock"
// @Param        ids             query  string  false  "Ids separados por coma"
// @Success      200  {object}  datatable.Response
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) DataTable(c *fiber.Ctx) error {
	req := datatable.ParseRequest(func(key string) string { return c.Query(key) })
	out, err := h.uc.DataTable(c.UserContext(), req, productoFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// HTML godoc
// @Summary      Configuración de la tabla de productos
// @Tags         productos
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  datatable.HTMLBuilder
// @Router       /api/productos/html [get]
func (h *ProductoHandler) HTML(c *fiber.Ctx) error {
	return c.JSON(h.uc.HTML(c.BaseURL() + "/api/productos"))
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  object  true  "nombre, categoria_id, referencia_fabrica, codigo_barras, unidad_medida, descripcion, stock, precio"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	in, err := request.BindProducto(GetInput(c))
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
// @Summary      Obtener producto
// @Tags         productos
// @Produce      json
// @Security     Bearer
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "producto")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  int     true  "ID del producto"
// @Param        body  body  object  true  "Campos del producto"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/productos/{id} [patch]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	in, err := request.BindProducto(GetInput(c))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar productos
// @Tags         productos
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv,application/xml
// @Security     Bearer
// @Param        format  path  string  true  "xlsx | csv | xml"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/export/{format} [get]
func (h *ProductoHandler) Export(c *fiber.Ctx) error {
	file, err := h.uc.Export(c.UserContext(), c.Params("format"), productoFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

// Print godoc
// @Summary      Vista de impresión de productos (PDF)
// @Tags         productos
// @Produce      application/pdf
// @Security     Bearer
// @Success      200
// @Router       /api/productos/print [get]
func (h *ProductoHandler) Print(c *fiber.Ctx) error {
	file, err := h.uc.Print(c.UserContext(), productoFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

func sendFile(c *fiber.Ctx, file *dto.ExportFile) error {
	c.Attachment(file.Filename)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Content)
}

// productoFilter lee la fuente del listado de la query string; los ids inválidos se ignoran.
func productoFilter(c *fiber.Ctx) repository.ProductoFilter {
	f := repository.ProductoFilter{
		CategoriaID:  int64(c.QueryInt("categoria_id")),
		SoloConStock: c.QueryBool("solo_con_stock"),
	}
	for _, part := range strings.Split(c.Query("ids"), ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil && id > 0 {
			f.IDs = append(f.IDs, id)
		}
	}
	return f
}
