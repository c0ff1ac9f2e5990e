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

	"github.com/Empasex/mini-pos-admin/internal/application/analytics"
	"github.com/Empasex/mini-pos-admin/internal/application/archive"
	"github.com/Empasex/mini-pos-admin/internal/application/inventory"
	"github.com/Empasex/mini-pos-admin/internal/application/reports"
	"github.com/Empasex/mini-pos-admin/internal/application/sales"
	"github.com/Empasex/mini-pos-admin/internal/domain/report"
	"github.com/Empasex/mini-pos-admin/internal/infrastructure/export"
	"github.com/Empasex/mini-pos-admin/internal/infrastructure/posapi"
	httpRouter "github.com/Empasex/mini-pos-admin/internal/interfaces/http"
	"github.com/Empasex/mini-pos-admin/pkg/config"
	"github.com/Empasex/mini-pos-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("pos_api", cfg.POS.BaseURL).
		Msg("iniciando aplicación")

	posClient := posapi.New(cfg.POS, log)

	labeler := report.NewPeriodLabeler()
	renderer := export.NewRenderer()

	reportController := reports.NewController(posClient, labeler, log)
	reportExport := reports.NewExportUseCase(reportController, renderer)
	dashboardUC := analytics.NewDashboardUseCase(posClient)
	salesUC := sales.NewUseCase(posClient)
	inventoryUC := inventory.NewUseCase(posClient)
	archiveUC := archive.NewUseCase(posClient, renderer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mini-POS Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReportController: reportController,
		ReportExport:     reportExport,
		DashboardUC:      dashboardUC,
		SalesUC:          salesUC,
		InventoryUC:      inventoryUC,
		ArchiveUC:        archiveUC,
		JWTSecret:        cfg.JWT.Secret,
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
