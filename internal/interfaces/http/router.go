package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Suprimentos-api/internal/application/analytics"
	"github.com/jhoicas/Suprimentos-api/internal/application/auth"
	"github.com/jhoicas/Suprimentos-api/internal/application/export"
	"github.com/jhoicas/Suprimentos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC     *usecase.OrderUseCase
	QuotationUC *usecase.QuotationUseCase
	AIUC        *usecase.AIUseCase
	BackupUC    *usecase.BackupUseCase
	DashboardUC *appanalytics.DashboardUseCase
	PDFUC       *export.PDFUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	pdfHandler := NewPDFHandler(deps.PDFUC)

	// Pedidos: rutas estáticas antes de /:id
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Post("/installments/preview", orderHandler.PreviewInstallments)
	orders.Get("/pdf", pdfHandler.OrderFlowPDF)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/archive", orderHandler.ToggleArchive)
	orders.Patch("/:id/installments/:number", orderHandler.UpdateInstallment)
	orders.Get("/:id/pdf", pdfHandler.OrderPDF)

	// Mapas de cotización
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations.Get("/", quotationHandler.List)
	quotations.Post("/", quotationHandler.Create)
	quotations.Post("/recalculate", quotationHandler.RecalculateItem)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Patch("/:id", quotationHandler.UpdateHeader)
	quotations.Delete("/:id", quotationHandler.Delete)
	quotations.Post("/:id/items", quotationHandler.AddItem)
	quotations.Patch("/:id/items/:itemId", quotationHandler.UpdateItem)
	quotations.Delete("/:id/items/:itemId", quotationHandler.RemoveItem)
	quotations.Patch("/:id/items/:itemId/suppliers/:supplierId", quotationHandler.SetSupplierQuote)
	quotations.Post("/:id/suppliers", quotationHandler.AddSupplier)
	quotations.Patch("/:id/suppliers/:supplierId", quotationHandler.RenameSupplier)
	quotations.Delete("/:id/suppliers/:supplierId", quotationHandler.RemoveSupplier)
	quotations.Get("/:id/pdf", pdfHandler.QuotationMapPDF)

	// Tablero
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
	protected.Get("/reports", dashboardHandler.GetReports)

	// IA
	aiHandler := NewAIHandler(deps.AIUC)
	protected.Post("/ai/orders/summary", aiHandler.SummarizeOrders)
	protected.Post("/ai/quotations/:id/analysis", aiHandler.AnalyzeQuotation)

	// Backup
	backupHandler := NewBackupHandler(deps.BackupUC)
	protected.Get("/backup", backupHandler.Export)
	protected.Put("/backup", backupHandler.Restore)
}
