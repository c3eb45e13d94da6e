package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/report"
	"github.com/jhoicas/Despensa-api/internal/application/stock"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC    *stock.UseCase
	TransferUC *stock.TransferUseCase
	ReportUC   *report.UseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Bodegas: la bodega concreta va en el path
	buckets := protected.Group("/buckets/:bucket")
	stockHandler := NewStockHandler(deps.StockUC)
	buckets.Get("/items", stockHandler.List)
	buckets.Post("/items", stockHandler.Create)
	buckets.Put("/items/:id/quantity", stockHandler.ConfirmQuantity)
	buckets.Put("/items/:id/status", stockHandler.UpdateStatus)
	buckets.Delete("/items/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), stockHandler.Delete)
	buckets.Get("/low-stock", stockHandler.LowStock)

	// Traslados entre bodegas
	transferHandler := NewTransferHandler(deps.TransferUC)
	buckets.Post("/items/:id/transfer", transferHandler.Transfer)
	buckets.Post("/items/:id/return", transferHandler.Return)

	// Historial de movimientos
	ledgerHandler := NewLedgerHandler(deps.StockUC)
	buckets.Get("/ledger", ledgerHandler.List)

	// Reportes PDF (admin y bodeguero)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := buckets.Group("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	reports.Get("/items/:id/labels", reportHandler.LabelSheet)
	reports.Get("/report", reportHandler.MovementReport)
}
