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
	"github.com/swaggo/swag"
	"golang.org/x/text/language"

	_ "github.com/jhoicas/Rentacar-api/docs"
	"github.com/jhoicas/Rentacar-api/internal/application/catalog"
	"github.com/jhoicas/Rentacar-api/internal/application/ports"
	"github.com/jhoicas/Rentacar-api/internal/application/rental"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
	"github.com/jhoicas/Rentacar-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Rentacar-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Rentacar-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Rentacar-api/internal/interfaces/http"
	"github.com/jhoicas/Rentacar-api/pkg/config"
	"github.com/jhoicas/Rentacar-api/pkg/logger"
)

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
		Str("storage", cfg.Storage.Driver).
		Dur("accrual_period", cfg.Ledger.AccrualPeriod).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		txRunner ports.TxRunner
		repos    repository.Repos
	)
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		txRunner = postgres.NewTxRunner(pool)
		repos = postgres.NewRepos(pool)
	default:
		store := memory.NewStore()
		txRunner = store
		repos = store.Repos()
		log.Warn().Msg("almacenamiento en memoria: el estado se pierde al reiniciar")
	}

	clock := ports.Clock(time.Now)
	catalogUC := catalog.NewCatalogUseCase(txRunner, repos.Cars, cfg.Ledger.OperatorID, clock, log)
	ledgerUC := rental.NewLedgerUseCase(txRunner, repos, rental.Config{
		OperatorID:    cfg.Ledger.OperatorID,
		AccrualPeriod: cfg.Ledger.AccrualPeriod,
	}, clock, log)

	// PDF: estado de cuenta del usuario
	pdfGenerator := infrapdf.NewStatementPDFGenerator(language.Spanish)
	statementUC := rental.NewStatementUseCase(repos.Users, repos.Entries, pdfGenerator, clock)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Rentacar API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("spec OpenAPI no encontrada, /docs deshabilitado")
	}

	// Spec OpenAPI registrada por el paquete docs (swag)
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		LedgerUC:    ledgerUC,
		StatementUC: statementUC,
		JWTSecret:   cfg.JWT.Secret,
		OperatorID:  cfg.Ledger.OperatorID,
		Logger:      log,
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
