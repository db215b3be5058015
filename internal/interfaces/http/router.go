package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/request"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompraUC    *usecase.CompraUseCase
	ProductoUC  *usecase.ProductoUseCase
	CategoriaUC *usecase.CategoriaUseCase
	BodegaUC    *usecase.BodegaUseCase
	UserUC      *usecase.UserUseCase
	Validator   *validation.Validator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Validator)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	writers := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)

	// Compras: todas las rutas pasan por el formulario (GET y DELETE no tienen reglas)
	compraForm := FormRequestMiddleware(request.CompraStoreRequest{}, deps.Validator)
	compraHandler := NewCompraHandler(deps.CompraUC)
	compras := protected.Group("/compras")
	compras.Get("/", compraForm, compraHandler.List)
	compras.Post("/", writers, compraForm, compraHandler.Create)
	compras.Get("/:id", compraForm, compraHandler.GetByID)
	compras.Patch("/:id", writers, compraForm, compraHandler.Update)
	compras.Put("/:id", writers, compraForm, compraHandler.Update)
	compras.Delete("/:id", writers, compraForm, compraHandler.Delete)

	// Productos
	productoForm := FormRequestMiddleware(request.ProductoStoreRequest{}, deps.Validator)
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos := protected.Group("/productos")
	productos.Get("/", productoHandler.DataTable)
	productos.Get("/html", productoHandler.HTML)
	productos.Get("/print", productoHandler.Print)
	productos.Get("/export/:format", productoHandler.Export)
	productos.Post("/", writers, productoForm, productoHandler.Create)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Patch("/:id", writers, productoForm, productoHandler.Update)

	// Categorías
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC, deps.Validator)
	categorias := protected.Group("/categorias")
	categorias.Get("/", categoriaHandler.List)
	categorias.Post("/", writers, categoriaHandler.Create)
	categorias.Get("/:id", categoriaHandler.GetByID)

	// Bodegas
	bodegaHandler := NewBodegaHandler(deps.BodegaUC, deps.Validator)
	bodegas := protected.Group("/bodegas")
	bodegas.Get("/", bodegaHandler.List)
	bodegas.Post("/", writers, bodegaHandler.Create)
	bodegas.Get("/:id", bodegaHandler.GetByID)

	// Proveedores (opciones de proveedor_id)
	protected.Get("/proveedores", NewProveedorHandler(deps.UserUC).List)
}
