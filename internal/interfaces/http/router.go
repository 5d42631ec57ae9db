package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	ProductUC        *usecase.ProductUseCase
	ReportUC         *usecase.ReportUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
	Features         config.FeatureFlags
}

// Router registra las rutas de la API.
//
// Las lecturas de catálogo son públicas; las mutaciones y los reportes exigen
// Bearer token más la política correspondiente.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth: login público; el registro de usuarios es solo para administradores.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", requireAuth, RequirePolicy(authz.RequireAdmin), authHandler.Register)

	// Categories: lecturas públicas, mutaciones con CanManageProducts.
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", requireAuth, RequirePolicy(authz.CanManageProducts), categoryHandler.Create)
	categories.Put("/:id", requireAuth, RequirePolicy(authz.CanManageProducts), categoryHandler.Update)
	categories.Delete("/:id", requireAuth, RequirePolicy(authz.CanManageProducts), categoryHandler.Delete)

	// Products: mismo esquema que categorías; el historial de movimientos
	// requiere CanViewReports.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.RegisterMovement)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", requireAuth, RequirePolicy(authz.CanManageProducts), productHandler.Create)
	products.Put("/:id", requireAuth, RequirePolicy(authz.CanManageProducts), productHandler.Update)
	products.Delete("/:id", requireAuth, RequirePolicy(authz.CanManageProducts), productHandler.Delete)
	products.Get("/:id/stock-movements", requireAuth, RequirePolicy(authz.CanViewReports), productHandler.GetStockMovements)

	// Stock movements (protegido, sujeto a feature flag).
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.Features.StockMovements)
	api.Post("/stock-movements", requireAuth, RequirePolicy(authz.CanDoStockMovements), inventoryHandler.RecordMovement)

	// Reports (protegido, sujeto a feature flag).
	reports := api.Group("/reports", requireAuth, RequirePolicy(authz.CanViewReports))
	reportHandler := NewReportHandler(deps.ReportUC, deps.Features.Reports)
	reports.Get("/stock-summary", reportHandler.GetStockSummary)
	reports.Get("/stock-summary/pdf", reportHandler.GetStockSummaryPDF)
}
