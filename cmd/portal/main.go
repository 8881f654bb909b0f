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

	"github.com/nivasahq/nivasa-portal/internal/application/auth"
	"github.com/nivasahq/nivasa-portal/internal/application/billing"
	"github.com/nivasahq/nivasa-portal/internal/application/session"
	"github.com/nivasahq/nivasa-portal/internal/application/usecase"
	"github.com/nivasahq/nivasa-portal/internal/domain/repository"
	"github.com/nivasahq/nivasa-portal/internal/infrastructure/memory"
	"github.com/nivasahq/nivasa-portal/internal/infrastructure/postgres"
	"github.com/nivasahq/nivasa-portal/internal/infrastructure/upstream"
	httpRouter "github.com/nivasahq/nivasa-portal/internal/interfaces/http"
	"github.com/nivasahq/nivasa-portal/pkg/config"
	"github.com/nivasahq/nivasa-portal/pkg/logger"
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
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando gateway")

	ctx := context.Background()

	// Persistencia de sesiones y auditoría: PostgreSQL en despliegue,
	// memoria para desarrollo sin DB (STORAGE_DRIVER=memory).
	var sessionStorage repository.SessionStorage
	var checkoutRepo repository.CheckoutRepository
	if cfg.Storage.Driver == "memory" {
		sessionStorage = memory.NewSessionStorage()
		checkoutRepo = memory.NewCheckoutRepository()
		log.Warn().Msg("almacenamiento en memoria: las sesiones no sobreviven al proceso")
	} else {
		pool, poolErr := postgres.NewPool(ctx, cfg.DB)
		if poolErr != nil {
			log.Fatal().Err(poolErr).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		sessionStorage = postgres.NewSessionStorage(pool)
		checkoutRepo = postgres.NewCheckoutRepository(pool)
	}

	api := upstream.New(cfg.Upstream.BaseURL, time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second)

	sessions := session.NewManager(sessionStorage, api, log.Component("session"))
	authUC := auth.NewUseCase(api, auth.DemoConfig{
		Enabled:      cfg.Demo.Enabled,
		Email:        cfg.Demo.Email,
		PasswordHash: cfg.Demo.PasswordHash,
		Name:         cfg.Demo.Name,
		Role:         cfg.Demo.Role,
	})
	navAccess := usecase.NewNavAccessService(api, time.Duration(cfg.Upstream.NavAccessTTL)*time.Second)
	complaintUC := usecase.NewComplaintUseCase(api)
	onboardingUC := usecase.NewOnboardingUseCase(api)
	propertyUC := usecase.NewPropertyUseCase(api)
	billingUC := billing.NewUseCase(api, checkoutRepo, log.Component("billing"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nivasa Portal Gateway",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:     sessions,
		AuthUC:       authUC,
		NavAccess:    navAccess,
		ComplaintUC:  complaintUC,
		OnboardingUC: onboardingUC,
		PropertyUC:   propertyUC,
		BillingUC:    billingUC,
		Cookie:       cfg.Cookie,
		Log:          log.Component("http"),
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

	log.Info().Msg("gateway detenido")
}
