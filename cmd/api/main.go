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

	appanalytics "github.com/jhoicas/Suprimentos-api/internal/application/analytics"
	"github.com/jhoicas/Suprimentos-api/internal/application/auth"
	"github.com/jhoicas/Suprimentos-api/internal/application/export"
	"github.com/jhoicas/Suprimentos-api/internal/application/ports"
	"github.com/jhoicas/Suprimentos-api/internal/application/usecase"
	infraai "github.com/jhoicas/Suprimentos-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/Suprimentos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Suprimentos-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Suprimentos-api/internal/interfaces/http"
	"github.com/jhoicas/Suprimentos-api/pkg/config"
	"github.com/jhoicas/Suprimentos-api/pkg/logger"
)

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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de documentos")
	}
	defer backend.Close()

	orderUC := usecase.NewOrderUseCase(backend.Orders, backend.Tx)
	quotationUC := usecase.NewQuotationUseCase(backend.Quotations, backend.Tx)
	backupUC := usecase.NewBackupUseCase(backend.Orders, backend.Quotations, backend.Tx)
	dashboardUC := appanalytics.NewDashboardUseCase(backend.Orders, backend.Quotations)

	aiUC := usecase.NewAIUseCase(newLLM(cfg.AI, log), backend.Orders, backend.Quotations, log)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.CompanyName)
	pdfUC := export.NewPDFUseCase(backend.Orders, backend.Quotations, pdfGenerator)

	if cfg.Auth.PasswordHash == "" {
		log.Warn().Msg("AUTH_PASSWORD_HASH vacío: el login queda deshabilitado (ver cmd/seed -hash)")
	}
	authUC := auth.NewAuthUseCase(cfg.Auth.Operator, cfg.Auth.PasswordHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 45, // el análisis IA puede tardar hasta 30 s
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Suprimentos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:     orderUC,
		QuotationUC: quotationUC,
		AIUC:        aiUC,
		BackupUC:    backupUC,
		DashboardUC: dashboardUC,
		PDFUC:       pdfUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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

// newLLM elige el adaptador según AI_PROVIDER. Gemini es el proveedor por defecto.
func newLLM(cfg config.AIConfig, log *logger.Logger) ports.LLMService {
	if cfg.Provider == "anthropic" {
		log.Info().Str("model", cfg.AnthropicModel).Msg("IA: Anthropic")
		return infraai.NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}
	log.Info().Str("summary_model", cfg.GeminiSummaryModel).Str("analysis_model", cfg.GeminiAnalysisModel).Msg("IA: Gemini")
	return infraai.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiSummaryModel, cfg.GeminiAnalysisModel)
}
