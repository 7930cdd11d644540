package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/application/auth"
	"github.com/jhoicas/molino-api/internal/application/ledger"
	"github.com/jhoicas/molino-api/internal/application/production"
	"github.com/jhoicas/molino-api/internal/application/reporting"
	"github.com/jhoicas/molino-api/internal/application/trading"
	"github.com/jhoicas/molino-api/internal/application/usecase"
	"github.com/jhoicas/molino-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ProductUC    *usecase.ProductUseCase
	PartyUC      *usecase.PartyUseCase
	AssetUC      *usecase.AssetUseCase
	Stock        *ledger.Service
	Purchases    *trading.Orchestrator
	Sales        *trading.Orchestrator
	Production   *production.UseCase
	Reports      *reporting.UseCase
	EffThreshold decimal.Decimal
	JWTSecret    string
}

const (
	roleAdmin     = entity.RoleAdmin
	roleBodeguero = entity.RoleBodeguero
	roleVendedor  = entity.RoleVendedor
	roleOperario  = entity.RoleOperario
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", authHandler.Me)

	catalogWriters := RequireRole(roleAdmin, roleBodeguero)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", catalogWriters, productHandler.Create)
	products.Put("/:id", catalogWriters, productHandler.Update)
	products.Post("/:id/activate", catalogWriters, productHandler.Activate)
	products.Post("/:id/deactivate", catalogWriters, productHandler.Deactivate)

	// Parties (proveedores y clientes)
	parties := protected.Group("/parties")
	partyHandler := NewPartyHandler(deps.PartyUC)
	partyWriters := RequireRole(roleAdmin, roleBodeguero, roleVendedor)
	parties.Get("/", partyHandler.List)
	parties.Get("/:id", partyHandler.GetByID)
	parties.Post("/", partyWriters, partyHandler.Create)
	parties.Put("/:id", partyWriters, partyHandler.Update)
	parties.Post("/:id/activate", partyWriters, partyHandler.Activate)
	parties.Post("/:id/deactivate", partyWriters, partyHandler.Deactivate)

	// Machines / Staff
	assetHandler := NewAssetHandler(deps.AssetUC)
	adminOnly := RequireRole(roleAdmin)
	machines := protected.Group("/machines")
	machines.Get("/", assetHandler.ListMachines)
	machines.Get("/:id", assetHandler.GetMachine)
	machines.Post("/", adminOnly, assetHandler.CreateMachine)
	machines.Post("/:id/deactivate", adminOnly, assetHandler.DeactivateMachine)
	staff := protected.Group("/staff")
	staff.Get("/", assetHandler.ListStaff)
	staff.Get("/:id", assetHandler.GetStaff)
	staff.Post("/", adminOnly, assetHandler.CreateStaff)
	staff.Post("/:id/deactivate", adminOnly, assetHandler.DeactivateStaff)

	// Stock ledger
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.Stock)
	stock.Get("/", stockHandler.List)
	stock.Get("/:product_id", stockHandler.Get)
	stock.Post("/", catalogWriters, stockHandler.Initialize)
	stock.Put("/:product_id/thresholds", catalogWriters, stockHandler.SetThresholds)
	stock.Post("/:product_id/adjust", adminOnly, stockHandler.Adjust)

	// Purchases / Sales
	registerOrders(protected.Group("/purchases"), NewOrderHandler(deps.Purchases, deps.Reports),
		RequireRole(roleAdmin, roleBodeguero))
	registerOrders(protected.Group("/sales"), NewOrderHandler(deps.Sales, deps.Reports),
		RequireRole(roleAdmin, roleVendedor))

	// Production
	prod := protected.Group("/production")
	prodHandler := NewProductionHandler(deps.Production)
	prodWriters := RequireRole(roleAdmin, roleBodeguero, roleOperario)
	prod.Get("/", prodHandler.List)
	prod.Get("/:id", prodHandler.GetByID)
	prod.Post("/validate", prodWriters, prodHandler.Validate)
	prod.Post("/", prodWriters, prodHandler.Create)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports, deps.EffThreshold)
	reports.Get("/stock", reportHandler.Stock)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/production", reportHandler.Production)
	reports.Get("/outstanding", reportHandler.Outstanding)
}

func registerOrders(g fiber.Router, h *OrderHandler, writers fiber.Handler) {
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Get("/:id/pdf", h.PDF)
	g.Post("/validate", writers, h.Validate)
	g.Post("/", writers, h.Create)
	g.Post("/:id/payments", writers, h.RecordPayment)
}
