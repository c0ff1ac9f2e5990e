package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Empasex/mini-pos-admin/internal/application/analytics"
	"github.com/Empasex/mini-pos-admin/internal/application/archive"
	"github.com/Empasex/mini-pos-admin/internal/application/inventory"
	"github.com/Empasex/mini-pos-admin/internal/application/reports"
	"github.com/Empasex/mini-pos-admin/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportController *reports.Controller
	ReportExport     *reports.ExportUseCase
	DashboardUC      *analytics.DashboardUseCase
	SalesUC          *sales.UseCase
	InventoryUC      *inventory.UseCase
	ArchiveUC        *archive.UseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Todas las rutas de negocio requieren
// Bearer Token; el acceso por módulo replica las reglas de navegación del
// cliente web: reportes/dashboard/archivo solo admin, inventario admin+stock,
// ventas admin+employee.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Reportes (solo admin)
	reportsGroup := api.Group("/reports", RequireRole(RoleAdmin))
	reportHandler := NewReportHandler(deps.ReportController, deps.ReportExport)
	reportsGroup.Get("/", reportHandler.Get)
	reportsGroup.Get("/export", reportHandler.Export)

	// Dashboard (solo admin)
	dashboard := api.Group("/dashboard", RequireRole(RoleAdmin))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Ventas (admin y vendedores)
	salesGroup := api.Group("/sales", RequireRole(RoleAdmin, RoleEmployee))
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Post("/", salesHandler.Register)

	// Productos (admin e inventario)
	products := api.Group("/products", RequireRole(RoleAdmin, RoleStock))
	productHandler := NewProductHandler(deps.InventoryUC)
	products.Get("/", productHandler.List)

	// Archivo histórico (solo admin)
	archiveGroup := api.Group("/archive", RequireRole(RoleAdmin))
	archiveHandler := NewArchiveHandler(deps.ArchiveUC)
	archiveGroup.Get("/batches", archiveHandler.ListBatches)
	archiveGroup.Get("/batches/:id", archiveHandler.BatchDetail)
	archiveGroup.Get("/batches/:id/export", archiveHandler.ExportBatch)
	archiveGroup.Post("/run", archiveHandler.Run)
	archiveGroup.Delete("/batches/:id", archiveHandler.DeleteBatch)
}
