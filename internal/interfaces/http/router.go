package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/almacen-api/internal/application/analytics"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	appinventory "github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProviderUC    *usecase.ProviderUseCase
	ProductUC     *usecase.ProductUseCase
	Ledger        *appinventory.LedgerUseCase
	ListMovements *appinventory.ListMovementsUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ReportUC      *appanalytics.ReportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
//
// Mapa de autorización por rol:
//   - Super-Administrador: todo, incluida la administración de usuarios,
//     proveedores y las eliminaciones de producto.
//   - Almacenista: alta y edición de productos, registro de movimientos.
//   - Consultor: solo lectura (listados, dashboard y reportes).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	readRoles := []string{entity.RoleSuperAdmin, entity.RoleAlmacenista, entity.RoleConsultor}
	writeRoles := []string{entity.RoleSuperAdmin, entity.RoleAlmacenista}

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users y roles (solo Super-Administrador)
	userHandler := NewUserHandler(deps.AuthUC)
	users := protected.Group("/users", RequireRole(entity.RoleSuperAdmin))
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	protected.Get("/roles", RequireRole(entity.RoleSuperAdmin), userHandler.ListRoles)

	// Providers (mutaciones solo Super-Administrador)
	providers := protected.Group("/providers")
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Post("/", RequireRole(entity.RoleSuperAdmin), providerHandler.Create)
	providers.Get("/", RequireRole(readRoles...), providerHandler.List)
	providers.Get("/:id", RequireRole(readRoles...), providerHandler.GetByID)
	providers.Put("/:id", RequireRole(entity.RoleSuperAdmin), providerHandler.Update)
	providers.Delete("/:id", RequireRole(entity.RoleSuperAdmin), providerHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(writeRoles...), productHandler.Create)
	products.Get("/", RequireRole(readRoles...), productHandler.List)
	products.Get("/:id", RequireRole(readRoles...), productHandler.GetByID)
	products.Put("/:id", RequireRole(writeRoles...), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleSuperAdmin), productHandler.Delete)

	// Inventory movements
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.ListMovements)
	invGroup.Post("/movements", RequireRole(writeRoles...), inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", RequireRole(readRoles...), inventoryHandler.ListMovements)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", RequireRole(readRoles...), dashboardHandler.GetSummary)

	// Reports
	reports := protected.Group("/reports", RequireRole(readRoles...))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/low-stock/pdf", reportHandler.LowStockPDF)
	reports.Get("/movements", inventoryHandler.ListMovements)
}
