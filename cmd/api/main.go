package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rice-stock-api/internal/application/alerts"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
	"github.com/tu-usuario/rice-stock-api/internal/domain/metrics"
	"github.com/tu-usuario/rice-stock-api/internal/infrastructure/monitoring"
	"github.com/tu-usuario/rice-stock-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/rice-stock-api/internal/interfaces/http"
	"github.com/tu-usuario/rice-stock-api/internal/scheduler"
	"github.com/tu-usuario/rice-stock-api/pkg/config"
	"github.com/tu-usuario/rice-stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	stockRepo := postgres.NewStockRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	varietyRepo := postgres.NewVarietyRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	thresholds := metrics.Thresholds{
		Low:    decimal.NewFromInt(int64(cfg.Stock.ThresholdLowPct)),
		Medium: decimal.NewFromInt(int64(cfg.Stock.ThresholdMediumPct)),
	}

	ledgerUC := ledger.NewUseCase(txRunner, warehouseRepo, varietyRepo, supplierRepo)
	queryUC := ledger.NewQueryUseCase(
		stockRepo, transactionRepo, purchaseRepo, saleRepo, transferRepo,
		adjustmentRepo, warehouseRepo, varietyRepo, supplierRepo, thresholds,
	)
	alertsUC := alerts.NewUseCase(stockRepo, notificationRepo, thresholds, cfg.Alerts.ExpiryWindowDays)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	http.Router(app, http.RouterDeps{
		LedgerUC: ledgerUC,
		QueryUC:  queryUC,
		AlertsUC: alertsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	var metricsSrv *monitoring.Server
	if cfg.Metrics.Enabled {
		metricsSrv = monitoring.NewServer(cfg.Metrics.Addr)
		go func() {
			if err := metricsSrv.Start(); err != nil {
				log.Error().Err(err).Msg("servidor de métricas finalizado")
			}
		}()
	}

	var sched *scheduler.Scheduler
	if cfg.Alerts.Enabled {
		sched = scheduler.New(cfg.Alerts, alertsUC, log)
		if err := sched.Start(); err != nil {
			log.Fatal().Err(err).Msg("arranque del scheduler")
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if sched != nil {
		sched.Stop()
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("apagado del servidor de métricas")
		}
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
