package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"reading-tracker/core/loader"
	"reading-tracker/core/metrics"
	"reading-tracker/core/logger"
	"reading-tracker/core/middleware/auth"
	"reading-tracker/core/middleware/rayid"
	"reading-tracker/feature/reading"
	"reading-tracker/feature/record"
	"reading-tracker/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reading page server",
	Long:  `Starts the HTTP server serving the reading page and the JSON API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		renderer, err := report.NewRenderer(cfg.Report, logg)
		if err != nil {
			return err
		}
		store := record.NewStore(cfg.Data, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		m := metrics.New(cfg.Server.MetricsEnabled)

		mgr := loader.NewManager()
		mgr.Register(reading.NewFeature(store, renderer, cfg.Report.WindowDays, cfg.Server.CacheTTL(), m, logg))

		// RayID first so every log line carries it
		app.Use(rayid.New())
		app.Use(m.Middleware())

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

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		if cfg.Server.MetricsEnabled {
			app.Get("/metrics", m.Handler())
		}

		// The page, health check and metrics stay public; the JSON API needs the key.
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/", "/health", "/metrics"}}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
