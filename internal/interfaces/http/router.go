package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/dtltrading/almacen-api/internal/application/analytics"
	"github.com/dtltrading/almacen-api/internal/application/auth"
	"github.com/dtltrading/almacen-api/internal/application/ledger"
	"github.com/dtltrading/almacen-api/internal/application/reports"
	"github.com/dtltrading/almacen-api/internal/application/usecase"
	"github.com/dtltrading/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	UserUC       *usecase.UserUseCase
	LedgerUC     *ledger.UseCase
	ReportsUC    *reports.UseCase
	DashboardUC  *appanalytics.DashboardUseCase
	AuthUC       *auth.AuthUseCase
	PDFGenerator reportPDFGenerator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)

	// Auth (público)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token + actor resuelto)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), LoadActor(deps.UserUC))

	// Registro de usuarios (solo admin)
	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Products (protegido; eliminar solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Categories (protegido; eliminar solo admin)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Stock ledger (protegido)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.LedgerUC)
	transactions.Post("/", transactionHandler.Record)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Get("/:id/audit", transactionHandler.Audit)
	transactions.Put("/:id", transactionHandler.Edit)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Reports (protegido). "history" se registra antes que ":id".
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC, deps.PDFGenerator)
	reportsGroup.Get("/history", reportHandler.History)
	reportsGroup.Get("/:id/export", reportHandler.Export)
	reportsGroup.Post("/:type", reportHandler.Generate)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	// Users (protegido; listado solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateProfile)
	users.Put("/me/password", userHandler.ChangePassword)
	users.Get("/", RequireRole(entity.RoleAdmin), userHandler.List)
}
