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

	"github.com/jhoicas/mistica-api/internal/application/activity"
	"github.com/jhoicas/mistica-api/internal/application/auth"
	"github.com/jhoicas/mistica-api/internal/application/catalog"
	"github.com/jhoicas/mistica-api/internal/application/ledger"
	"github.com/jhoicas/mistica-api/internal/application/replenishment"
	"github.com/jhoicas/mistica-api/internal/application/report"
	"github.com/jhoicas/mistica-api/internal/domain/repository"
	"github.com/jhoicas/mistica-api/internal/infrastructure/bolt"
	infracsv "github.com/jhoicas/mistica-api/internal/infrastructure/csv"
	"github.com/jhoicas/mistica-api/internal/infrastructure/excel"
	"github.com/jhoicas/mistica-api/internal/infrastructure/jobs"
	"github.com/jhoicas/mistica-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/mistica-api/internal/infrastructure/pdf"
	"github.com/jhoicas/mistica-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/mistica-api/internal/interfaces/http"
	"github.com/jhoicas/mistica-api/pkg/config"
	"github.com/jhoicas/mistica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore := openStorage(ctx, cfg, log)
	defer closeStore()

	activities := activity.NewStore()
	stockLedger := ledger.NewStockLedger(store, activities, log)
	if err := stockLedger.Hydrate(ctx); err != nil {
		log.Warn().Err(err).Msg("no se pudo restaurar el libro de stock; se inicia vacío")
	}

	catalogUC := catalog.NewCatalogUseCase(stockLedger, activities, catalog.Delays{
		Load:  cfg.Simulate.LoadDelay,
		Write: cfg.Simulate.WriteDelay,
	}, log)
	if err := catalogUC.LoadProducts(ctx); err != nil {
		log.Fatal().Err(err).Msg("carga del catálogo")
	}

	authUC := auth.NewAuthUseCase(store, auth.Config{
		AdminEmail:        cfg.Auth.AdminEmail,
		AdminPasswordHash: cfg.Auth.AdminPasswordHash,
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		Delay: cfg.Simulate.AuthDelay,
	}, log)
	if _, err := authUC.RestoreSession(ctx); err != nil {
		log.Warn().Err(err).Msg("no se pudo restaurar la sesión")
	}

	reportUC := report.NewReportUseCase(catalogUC, stockLedger,
		excel.NewProductsWorkbook(), infracsv.NewMovementsCSV(), infrapdf.NewMarotoPDFGenerator(), log)

	scheduler, err := jobs.NewScheduler(cfg.Jobs.StockDigestCron, reportUC, log)
	if err != nil {
		log.Fatal().Err(err).Msg("tareas programadas")
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.DocsEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "MÍSTICA API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CatalogUC:  catalogUC,
		Ledger:     stockLedger,
		Activities: activities,
		ReportUC:   reportUC,
		Restock:    replenishment.NewReplenishmentUseCase(catalogUC, stockLedger),
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

// openStorage abre el BlobStore según STORAGE_DRIVER y devuelve su función de cierre.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.BlobStore, func()) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return memory.NewBlobStore(), func() {}
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		store, err := postgres.NewBlobStore(ctx, pool)
		if err != nil {
			pool.Close()
			log.Fatal().Err(err).Msg("esquema de PostgreSQL")
		}
		return store, pool.Close
	default:
		store, err := bolt.Open(cfg.Storage.BoltPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.BoltPath).Msg("abrir archivo de datos")
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Warn().Err(err).Msg("cerrar archivo de datos")
			}
		}
	}
}
