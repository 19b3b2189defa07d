package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-control-api/internal/application/auth"
	"github.com/tu-usuario/stock-control-api/internal/application/stock"
	"github.com/tu-usuario/stock-control-api/internal/application/usecase"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	ReportUC    *usecase.ReportUseCase
	StockLedger *stock.StockLedgerUseCase
	AuthUC      *auth.AuthUseCase
	PricePDF    *pdf.PriceListPDFGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users (gestión solo ADMIN; my-categories para cualquier autenticado)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.AuthUC)
	users.Get("/my-categories", userHandler.MyCategories)
	users.Post("/", adminOnly, userHandler.Create)
	users.Get("/", adminOnly, userHandler.List)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Categories (lectura para autenticados, mutaciones solo ADMIN)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products (protegido; ajuste masivo de precios solo ADMIN)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.AuthUC)
	products.Post("/adjust-price", adminOnly, productHandler.AdjustPrices)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Stock movements (protegido)
	movements := protected.Group("/stock-movements")
	movementHandler := NewMovementHandler(deps.StockLedger, deps.AuthUC)
	movements.Post("/entry", movementHandler.RegisterEntry)
	movements.Post("/exit", movementHandler.RegisterExit)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.AuthUC, deps.PricePDF)
	reports.Get("/price-list", reportHandler.PriceList)
	reports.Get("/price-list/pdf", reportHandler.PriceListPDF)
	reports.Get("/stock-balance", reportHandler.StockBalance)
	reports.Get("/below-min-stock", reportHandler.BelowMinStock)
	reports.Get("/product-count-by-category", reportHandler.ProductCountByCategory)
	reports.Get("/top-movement-products", reportHandler.TopMovementProducts)
}
