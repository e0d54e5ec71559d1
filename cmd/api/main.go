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

	_ "github.com/jvargas/Finanzas-api/docs"
	"github.com/jvargas/Finanzas-api/internal/application/auth"
	"github.com/jvargas/Finanzas-api/internal/application/contabilidad"
	"github.com/jvargas/Finanzas-api/internal/application/finanzas"
	"github.com/jvargas/Finanzas-api/internal/application/inventario"
	"github.com/jvargas/Finanzas-api/internal/application/reportes"
	"github.com/jvargas/Finanzas-api/internal/domain/expiry"
	infrapdf "github.com/jvargas/Finanzas-api/internal/infrastructure/pdf"
	"github.com/jvargas/Finanzas-api/internal/infrastructure/postgres"
	"github.com/jvargas/Finanzas-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jvargas/Finanzas-api/internal/interfaces/http"
	"github.com/jvargas/Finanzas-api/pkg/config"
	"github.com/jvargas/Finanzas-api/pkg/logger"
	"github.com/jvargas/Finanzas-api/pkg/moneda"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	accountRepo := postgres.NewOpenAccountRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	journalRepo := postgres.NewJournalRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	thresholds := expiry.Thresholds{
		CriticalDays: cfg.Finanza.CriticalDays,
		WarningDays:  cfg.Finanza.WarningDays,
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	lotsUC := inventario.NewLotsUseCase(lotRepo, thresholds)
	accountsUC := finanzas.NewAccountsUseCase(accountRepo, paymentRepo)
	registerPaymentUC := finanzas.NewRegisterPaymentUseCase(txRunner, cfg.Finanza.AllowOverpayment)
	journalUC := contabilidad.NewJournalUseCase(txRunner, journalRepo)

	// Reportes: PDF (Maroto) y libro diario XML (etree)
	formatter := moneda.New(cfg.Finanza.CurrencySymbol, cfg.Finanza.Locale)
	pdfGenerator := infrapdf.NewMarotoReportGenerator(formatter)
	bookExporter := xmlexport.NewLibroDiarioExporter(cfg.Finanza.CompanyName, cfg.Finanza.CurrencyCode)
	reportsUC := reportes.NewReportsUseCase(
		lotRepo, accountRepo, journalRepo, pdfGenerator, bookExporter, thresholds,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Finanzas Core API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		LotsUC:          lotsUC,
		AccountsUC:      accountsUC,
		RegisterPayment: registerPaymentUC,
		JournalUC:       journalUC,
		ReportsUC:       reportsUC,
		JWTSecret:       cfg.JWT.Secret,
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
