package router

import (
	"context"
	"time"

	"bfbsupply/internal/config"
	"bfbsupply/internal/handler"
	"bfbsupply/internal/middleware"
	"bfbsupply/internal/repository"
	"bfbsupply/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Repositories is the storage backend the services run on.
type Repositories struct {
	Sites     repository.SiteRepository
	Suppliers repository.SupplierRepository
	Materials repository.MaterialRepository
	Inventory repository.InventoryRepository
	Orders    repository.OrderRepository
	Stats     repository.StatsRepository
}

// GormRepositories builds the Postgres-backed repositories.
func GormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Sites:     repository.NewSiteRepository(db),
		Suppliers: repository.NewSupplierRepository(db),
		Materials: repository.NewMaterialRepository(db),
		Inventory: repository.NewInventoryRepository(db),
		Orders:    repository.NewOrderRepository(db),
		Stats:     repository.NewStatsRepository(db),
	}
}

// Deps carries everything New wires together. DB and Redis are optional:
// without DB the readiness route is not mounted; without Redis rate-limit
// counters stay in process memory.
type Deps struct {
	Repos Repositories
	DB    *gorm.DB
	Redis *redis.Client
	Now   func() time.Time
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
// ctx bounds background goroutines started for the engine.
func New(ctx context.Context, cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	var rateStore middleware.RateStore
	if deps.Redis != nil {
		rateStore = middleware.NewRedisRateStore(deps.Redis)
	} else {
		rateStore = middleware.NewMemoryRateStore(ctx)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(rateStore, cfg.RateLimitPerMinute, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	siteSvc := service.NewSiteService(deps.Repos.Sites)
	supplierSvc := service.NewSupplierService(deps.Repos.Suppliers)
	materialSvc := service.NewMaterialService(deps.Repos.Materials)
	inventorySvc := service.NewInventoryService(deps.Repos.Inventory)
	orderSvc := service.NewOrderService(deps.Repos.Orders, now)
	kpiSvc := service.NewKPIService(deps.Repos.Stats)

	// ── Handlers ─────────────────────────────────────────────────────────────
	sitesH := handler.NewSitesHandler(siteSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	materialsH := handler.NewMaterialsHandler(materialSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	kpiH := handler.NewKPIHandler(kpiSvc, now)

	// ── Routes ───────────────────────────────────────────────────────────────
	api := r.Group("/api")
	{
		api.GET("/health", handler.Health(now))
		if deps.DB != nil {
			api.GET("/ready", handler.Ready(deps.DB, deps.Redis))
		}

		sites := api.Group("/sites")
		{
			sites.GET("", sitesH.List)
			sites.POST("", sitesH.Create)
			sites.GET("/:id", sitesH.Get)
			sites.PATCH("/:id", sitesH.Update)
		}

		suppliers := api.Group("/suppliers")
		{
			suppliers.GET("", suppliersH.List)
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("/:id", suppliersH.Get)
			suppliers.PATCH("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		materials := api.Group("/materials")
		{
			materials.GET("", materialsH.List)
			materials.POST("", materialsH.Create)
			materials.GET("/:id", materialsH.Get)
			materials.PATCH("/:id", materialsH.Update)
			materials.DELETE("/:id", materialsH.Delete)
		}

		inv := api.Group("/inventory")
		{
			inv.GET("", inventoryH.List)
			inv.POST("", inventoryH.Create)
			inv.GET("/:id", inventoryH.Get)
			inv.PATCH("/:id", inventoryH.Update)
			inv.DELETE("/:id", inventoryH.Delete)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", ordersH.List)
			orders.POST("", ordersH.Create)
			orders.GET("/:id", ordersH.Get)
			orders.PATCH("/:id", ordersH.Update)
			orders.DELETE("/:id", ordersH.Delete)
		}

		api.GET("/kpi", kpiH.Get)
		api.GET("/kpi/report.pdf", kpiH.Report)
	}

	return r
}
