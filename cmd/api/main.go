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

	"github.com/jhoicas/molino-api/internal/application/auth"
	"github.com/jhoicas/molino-api/internal/application/ledger"
	"github.com/jhoicas/molino-api/internal/application/ports"
	"github.com/jhoicas/molino-api/internal/application/production"
	"github.com/jhoicas/molino-api/internal/application/reporting"
	"github.com/jhoicas/molino-api/internal/application/trading"
	"github.com/jhoicas/molino-api/internal/application/usecase"
	"github.com/jhoicas/molino-api/internal/domain/repository"
	"github.com/jhoicas/molino-api/internal/infrastructure/lock"
	"github.com/jhoicas/molino-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/molino-api/internal/infrastructure/pdf"
	"github.com/jhoicas/molino-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/molino-api/internal/interfaces/http"
	"github.com/jhoicas/molino-api/pkg/config"
	"github.com/jhoicas/molino-api/pkg/logger"
)

// repos agrupa los adaptadores de persistencia elegidos por APP_STORAGE.
type repos struct {
	users      repository.UserRepository
	products   repository.ProductRepository
	parties    repository.PartyRepository
	machines   repository.MachineRepository
	staff      repository.StaffRepository
	stock      repository.StockRepository
	orders     repository.OrderRepository
	production repository.ProductionRepository
	txRunner   ports.TxRunner
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	r := openStorage(ctx, cfg, log)
	defer r.close()

	// Lock por producto: Redis si hay varias réplicas, en proceso si hay una sola.
	var locker ports.Locker = lock.NewKeyedMutex()
	if cfg.Redis.Enabled() {
		rdb, err := lock.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		locker = lock.NewRedisLocker(rdb, cfg.Redis.LockTTL, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("bloqueo distribuido con Redis")
	}

	tradingDeps := trading.Deps{
		Products: r.products,
		Parties:  r.parties,
		Orders:   r.orders,
		Stock:    r.stock,
		Locker:   locker,
		TxRunner: r.txRunner,
		Log:      log,
	}
	purchases := trading.NewPurchaseOrchestrator(tradingDeps)
	sales := trading.NewSalesOrchestrator(tradingDeps)

	productionUC := production.NewUseCase(production.Deps{
		Products:            r.products,
		Machines:            r.machines,
		Staff:               r.staff,
		Records:             r.production,
		Stock:               r.stock,
		Locker:              locker,
		TxRunner:            r.txRunner,
		Log:                 log,
		EfficiencyThreshold: cfg.Production.EfficiencyThreshold,
	})
	stockSvc := ledger.NewService(r.products, r.stock, locker, r.txRunner, log)

	// PDF: documento de la orden de compra / venta
	reportsUC := reporting.NewUseCase(reporting.Deps{
		Stock:       stockSvc,
		Purchases:   purchases,
		Sales:       sales,
		Production:  productionUC,
		Parties:     r.parties,
		Products:    r.products,
		PDF:         infrapdf.NewMarotoPDFGenerator(),
		CompanyName: cfg.App.Name,
	})

	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.App.SwaggerFile,
		Path:     "docs",
		Title:    "Molino API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.App.Storage})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       usecase.NewUserUseCase(r.users),
		ProductUC:    usecase.NewProductUseCase(r.products),
		PartyUC:      usecase.NewPartyUseCase(r.parties),
		AssetUC:      usecase.NewAssetUseCase(r.machines, r.staff),
		Stock:        stockSvc,
		Purchases:    purchases,
		Sales:        sales,
		Production:   productionUC,
		Reports:      reportsUC,
		EffThreshold: productionUC.Threshold(),
		JWTSecret:    cfg.JWT.Secret,
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

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) repos {
	if cfg.App.Storage == config.StorageMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return repos{
			users:      memory.NewUserRepository(s),
			products:   memory.NewProductRepository(s),
			parties:    memory.NewPartyRepository(s),
			machines:   memory.NewMachineRepository(s),
			staff:      memory.NewStaffRepository(s),
			stock:      memory.NewStockRepository(s),
			orders:     memory.NewOrderRepository(s),
			production: memory.NewProductionRepository(s),
			txRunner:   memory.NewTxRunner(s),
			close:      func() {},
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del esquema")
		}
		log.Info().Msg("esquema aplicado")
	}
	return repos{
		users:      postgres.NewUserRepository(pool),
		products:   postgres.NewProductRepository(pool),
		parties:    postgres.NewPartyRepository(pool),
		machines:   postgres.NewMachineRepository(pool),
		staff:      postgres.NewStaffRepository(pool),
		stock:      postgres.NewStockRepository(pool),
		orders:     postgres.NewOrderRepository(pool),
		production: postgres.NewProductionRepository(pool),
		txRunner:   postgres.NewTxRunner(pool),
		close:      pool.Close,
	}
}
