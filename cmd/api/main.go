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

	"github.com/farmasys/farmastock-api/internal/application/auth"
	"github.com/farmasys/farmastock-api/internal/application/inventory"
	"github.com/farmasys/farmastock-api/internal/application/reports"
	"github.com/farmasys/farmastock-api/internal/application/usecase"
	infraexcel "github.com/farmasys/farmastock-api/internal/infrastructure/excel"
	infrapdf "github.com/farmasys/farmastock-api/internal/infrastructure/pdf"
	"github.com/farmasys/farmastock-api/internal/infrastructure/postgres"
	httpRouter "github.com/farmasys/farmastock-api/internal/interfaces/http"
	"github.com/farmasys/farmastock-api/pkg/config"
	"github.com/farmasys/farmastock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	calc := inventory.NewStockCalculator(productRepo, movementRepo, log)
	submitMovementUC := inventory.NewSubmitMovementUseCase(txRunner, calc)
	queriesUC := inventory.NewQueryUseCase(movementRepo, calc)
	alertsUC := inventory.NewAlertUseCase(productRepo, calc, nil)

	productUC := usecase.NewProductUseCase(productRepo, movementRepo, calc)
	userUC := usecase.NewUserUseCase(userRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	excelGenerator := infraexcel.NewExcelizeGenerator()
	reportsUC := reports.NewReportUseCase(
		productRepo, movementRepo, calc,
		pdfGenerator, excelGenerator,
		cfg.Alerts.HorizonDays, nil,
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FarmaStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		UserUC:           userUC,
		SubmitMovement:   submitMovementUC,
		Queries:          queriesUC,
		Alerts:           alertsUC,
		Reports:          reportsUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
		AlertHorizonDays: cfg.Alerts.HorizonDays,
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
