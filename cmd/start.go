package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/config"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/loader"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/logger"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/middleware/auth"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/middleware/rayid"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/feature/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/docs/swagger"
)

// @title Trendyol Airtable Integration API
// @version 1.0
// @description API for triggering and inspecting the Trendyol to Airtable order sync.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the order sync server",
	Long:  `Starts the HTTP server, the sync endpoints, and the optional interval scheduler.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := cfg.Validate(); err != nil {
			logg.Fatal("Invalid configuration", zap.Error(err))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 3. Build External Clients and State Store
		deps, err := buildSyncDeps(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize dependencies", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()

		feature := orders.NewFeature(deps.store, deps.feed, deps.state, deps.db,
			cfg.Airtable, cfg.Sync, logg)
		mgr.Register(feature)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation and Health (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		feature.RegisterDiagnostics(app)

		// 3. Shared-Secret Auth (Protect Trigger Endpoints)
		app.Use(auth.New(auth.Config{Secret: cfg.Server.CronSecret}))
		if !cfg.Server.RequiresAuth() {
			logg.Warn("No cron secret configured, sync endpoints are unauthenticated")
		}

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start the Interval Scheduler (Optional)
		if cfg.Sync.IntervalMinutes > 0 {
			scheduler := orders.NewScheduler(feature.Service(),
				time.Duration(cfg.Sync.IntervalMinutes)*time.Minute, logg)
			go func() {
				if err := scheduler.Run(ctx); err != nil {
					logg.Error("Scheduler stopped with error", zap.Error(err))
				}
			}()
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
