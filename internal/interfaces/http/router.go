package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmasys/farmastock-api/internal/application/auth"
	"github.com/farmasys/farmastock-api/internal/application/inventory"
	"github.com/farmasys/farmastock-api/internal/application/reports"
	"github.com/farmasys/farmastock-api/internal/application/usecase"
	"github.com/farmasys/farmastock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	UserUC           *usecase.UserUseCase
	SubmitMovement   *inventory.SubmitMovementUseCase
	Queries          *inventory.QueryUseCase
	Alerts           *inventory.AlertUseCase
	Reports          *reports.ReportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
	AlertHorizonDays int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; el registro de usuarios lo hace un admin.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin),
		authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; eliminar solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	movementHandler := NewMovementHandler(deps.SubmitMovement, deps.Queries)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", movementHandler.GetStock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Movimientos del ledger (protegido)
	movements := protected.Group("/movements")
	movements.Post("/", movementHandler.Submit)
	movements.Get("/", movementHandler.List)
	movements.Get("/recent", movementHandler.Recent)

	// Alertas y dashboard (protegido)
	alertHandler := NewAlertHandler(deps.Alerts, deps.AlertHorizonDays)
	protected.Get("/alerts", alertHandler.GetAlerts)
	protected.Get("/dashboard/stats", alertHandler.GetDashboardStats)

	// Reportes (protegido; auxiliares no exportan)
	reportsGroup := protected.Group("/reports", RequireRole(entity.RoleAdmin, entity.RoleFarmaceutico))
	reportHandler := NewReportHandler(deps.Reports)
	reportsGroup.Get("/inventory", reportHandler.Inventory)
	reportsGroup.Get("/movements", reportHandler.Movements)
	reportsGroup.Get("/alerts", reportHandler.Alerts)

	// Usuarios (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
}
