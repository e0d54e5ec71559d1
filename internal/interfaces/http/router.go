package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvargas/Finanzas-api/internal/application/auth"
	"github.com/jvargas/Finanzas-api/internal/application/contabilidad"
	"github.com/jvargas/Finanzas-api/internal/application/finanzas"
	"github.com/jvargas/Finanzas-api/internal/application/inventario"
	"github.com/jvargas/Finanzas-api/internal/application/reportes"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	LotsUC          *inventario.LotsUseCase
	AccountsUC      *finanzas.AccountsUseCase
	RegisterPayment *finanzas.RegisterPaymentUseCase
	JournalUC       *contabilidad.JournalUseCase
	ReportsUC       *reportes.ReportsUseCase
	JWTSecret       string
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

	// Lotes: el alta es de almacén; la consulta es para todos
	lots := protected.Group("/lots")
	lotHandler := NewLotHandler(deps.LotsUC)
	lots.Post("/", RequireRole(entity.RoleAdmin, entity.RoleAlmacenero), lotHandler.Register)
	lots.Get("/", lotHandler.List)
	lots.Get("/:id", lotHandler.GetByID)

	// Cuentas por pagar/cobrar: escritura solo contable
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountsUC, deps.RegisterPayment)
	accounts.Post("/", RequireRole(entity.RoleAdmin, entity.RoleContador), accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Post("/:id/payments", RequireRole(entity.RoleAdmin, entity.RoleContador), accountHandler.RegisterPayment)

	// Libro diario: escritura solo contable
	journal := protected.Group("/journal")
	journalHandler := NewJournalHandler(deps.JournalUC)
	journal.Post("/entries", RequireRole(entity.RoleAdmin, entity.RoleContador), journalHandler.Create)
	journal.Post("/entries/validate", journalHandler.Validate)
	journal.Get("/entries", journalHandler.List)
	journal.Get("/entries/:id", journalHandler.GetByID)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reports.Get("/lots/summary", reportHandler.LotSummary)
	reports.Get("/lots/expiry.pdf", reportHandler.ExpiryPDF)
	reports.Get("/accounts/summary", reportHandler.AccountSummary)
	reports.Get("/accounts/aging.pdf", reportHandler.AgingPDF)
	reports.Get("/journal/libro-diario.xml", reportHandler.JournalBookXML)
}
