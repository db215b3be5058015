package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Gestion-api/docs"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/datatable"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/validation"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/Gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/migrations"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

// @title                       Gestion API
// @version                     1.0
// @description                 Compras, productos, categorías y bodegas.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		applied, err := postgres.Migrate(ctx, pool, migrations.FS)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("aplicadas", applied).Msg("migraciones al día")
	}

	userRepo := postgres.NewUserRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	bodegaRepo := postgres.NewBodegaRepository(pool)

	validator := validation.New(postgres.NewPresenceVerifier(pool))

	// Listado de productos: tabla de servidor, exportación (xlsx/csv/xml) e impresión PDF
	productoTable := datatable.NewProductoDataTable(cfg.App.Name, cfg.Export.Company)
	productoUC := usecase.NewProductoUseCase(
		productoRepo, productoTable, export.Writers(), infrapdf.NewMarotoListPrinter(cfg.Export.Company),
	).WithDefaultFormat(cfg.Export.Writer)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
		Issuer: cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Title = cfg.App.Name + " API"
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompraUC:    usecase.NewCompraUseCase(compraRepo),
		ProductoUC:  productoUC,
		CategoriaUC: usecase.NewCategoriaUseCase(categoriaRepo),
		BodegaUC:    usecase.NewBodegaUseCase(bodegaRepo),
		UserUC:      usecase.NewUserUseCase(userRepo),
		Validator:   validator,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
