package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rice-stock-api/internal/application/alerts"
	"github.com/tu-usuario/rice-stock-api/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC *ledger.UseCase
	QueryUC  *ledger.QueryUseCase
	AlertsUC *alerts.UseCase
}

// Router registra las rutas de la API. La autenticación vive aguas arriba:
// el actor llega en el header X-User-ID y las mutaciones lo exigen.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Las cuatro mutaciones del libro
	ledgerGroup := api.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup.Post("/purchases", ledgerHandler.RegisterPurchase)
	ledgerGroup.Post("/sales", ledgerHandler.RegisterSale)
	ledgerGroup.Post("/transfers", ledgerHandler.RegisterTransfer)
	ledgerGroup.Post("/adjustments", ledgerHandler.RegisterAdjustment)

	// Lecturas de lotes y libro
	stockHandler := NewStockHandler(deps.QueryUC)
	stocks := api.Group("/stocks")
	stocks.Get("/", stockHandler.List)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Get("/:id/ledger", stockHandler.Ledger)

	transactionHandler := NewTransactionHandler(deps.QueryUC)
	api.Get("/transactions", transactionHandler.List)

	// Datos maestros y métricas
	warehouseHandler := NewWarehouseHandler(deps.QueryUC)
	warehouses := api.Group("/warehouses")
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id/metrics", warehouseHandler.Metrics)

	masterHandler := NewMasterDataHandler(deps.QueryUC)
	api.Get("/varieties", masterHandler.ListVarieties)
	api.Get("/suppliers", masterHandler.ListSuppliers)

	reportHandler := NewReportHandler(deps.QueryUC)
	api.Get("/reports/profit", reportHandler.Profit)

	activityHandler := NewActivityHandler(deps.QueryUC)
	api.Get("/activity/recent", activityHandler.Recent)

	notificationHandler := NewNotificationHandler(deps.AlertsUC)
	api.Get("/notifications", notificationHandler.ListUnread)
}
