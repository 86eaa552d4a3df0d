package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/alert"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/analytics"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/inventory"
	infrapdf "github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/pdf"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/rabbitmq"
	infraredis "github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/redis"
	httpRouter "github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/interfaces/http"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/config"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("la aplicación terminó con error")
		os.Exit(1)
	}
	log.Info().Msg("aplicación detenida")
}

// run arma las dependencias y sirve hasta recibir SIGINT/SIGTERM. Los defer cierran en orden
// inverso lo que alcanzó a abrirse, también cuando una dependencia posterior falla.
func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()
	be, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("inicializar almacenamiento: %w", err)
	}
	defer be.close()

	operationUC := inventory.NewOperationUseCase(
		be.tx, be.operations, be.moves, be.products,
		infrapdf.NewSlipGenerator(cfg.App.Name), log,
	)
	metricsUC := analytics.NewMetricsUseCase(be.metrics)
	alertUC := alert.NewAlertUseCase(be.alerts, be.products, log)

	// Candado distribuido: con varias réplicas solo una ejecuta cada barrido.
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("conexión a Redis: %w", err)
		}
		defer rdb.Close()
		alertUC.WithLocker(infraredis.NewLocker(rdb, cfg.Alerts.LockTTL))
	}
	if cfg.RabbitMQ.Enabled() {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			return fmt.Errorf("conexión a RabbitMQ: %w", err)
		}
		defer pub.Close()
		alertUC.WithPublisher(pub)
	}

	var scheduler *alert.Scheduler
	if cfg.Alerts.SweepEnabled {
		scheduler = alert.NewScheduler(alertUC, cfg.Alerts.SweepInterval, log)
		scheduler.Start(ctx)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if cfg.App.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Stock Operations API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := be.ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.App.StoreDriver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Operations: operationUC,
		Metrics:    metricsUC,
		Alerts:     alertUC,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log.Component("http"),
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case <-quit:
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	case err := <-listenErr:
		if err != nil {
			serveErr = fmt.Errorf("servidor HTTP: %w", err)
		}
	}

	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	return serveErr
}
