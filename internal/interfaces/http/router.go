package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mistica-api/internal/application/activity"
	"github.com/jhoicas/mistica-api/internal/application/auth"
	"github.com/jhoicas/mistica-api/internal/application/catalog"
	"github.com/jhoicas/mistica-api/internal/application/ledger"
	"github.com/jhoicas/mistica-api/internal/application/replenishment"
	"github.com/jhoicas/mistica-api/internal/application/report"
	"github.com/jhoicas/mistica-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CatalogUC  *catalog.CatalogUseCase
	Ledger     *ledger.StockLedger
	Activities *activity.Store
	ReportUC   *report.ReportUseCase
	Restock    *replenishment.ReplenishmentUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	adminOnly := RequireRole(entity.RoleAdministrador)

	productHandler := NewProductHandler(deps.CatalogUC)
	reportHandler := NewReportHandler(deps.ReportUC, deps.CatalogUC)
	stockHandler := NewStockHandler(deps.Ledger, deps.Restock)
	activityHandler := NewActivityHandler(deps.Activities)

	// Products: rutas fijas antes de /:id
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/load", productHandler.Load)
	products.Get("/stats", productHandler.Stats)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/search", productHandler.Search)
	products.Get("/export", reportHandler.ExportProducts)
	products.Get("/export/summary", reportHandler.ExportSummary)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Get("/:id/label", reportHandler.ProductLabel)
	products.Post("/:id/stock/add", productHandler.AddStock)
	products.Post("/:id/stock/reduce", productHandler.ReduceStock)
	products.Post("/:id/stock/set", productHandler.SetStock)
	products.Post("/:id/adjustments", productHandler.Adjust)

	// Stock ledger
	stock := protected.Group("/stock")
	stock.Get("/movements", stockHandler.Movements)
	stock.Get("/movements/recent", stockHandler.RecentMovements)
	stock.Get("/movements/export", reportHandler.ExportMovements)
	stock.Get("/movements/stats", reportHandler.MovementStats)
	stock.Get("/alerts", stockHandler.Alerts)
	stock.Post("/alerts/:id/resolve", stockHandler.ResolveAlert)
	stock.Get("/adjustments", stockHandler.Adjustments)
	stock.Get("/settings/:productId", stockHandler.GetSettings)
	stock.Put("/settings/:productId", stockHandler.PutSettings)
	stock.Get("/summary", stockHandler.Summary)
	stock.Get("/replenishment", stockHandler.Replenishment)
	stock.Get("/report", reportHandler.StockReport)
	stock.Get("/report.pdf", reportHandler.StockReportPDF)

	// Activities
	activities := protected.Group("/activities")
	activities.Get("/", activityHandler.List)
	activities.Get("/recent", activityHandler.Recent)
	activities.Post("/", activityHandler.Create)
	activities.Delete("/", adminOnly, activityHandler.Clear)
}
