package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"dropship-sync/core/config"
	"dropship-sync/core/logger"
	"dropship-sync/core/middleware/auth"
	"dropship-sync/core/middleware/rayid"
	"dropship-sync/core/storefront"
	"dropship-sync/core/supplier"
	"dropship-sync/core/worker"
	"dropship-sync/feature/catalog"
	"dropship-sync/feature/catalog/models"
	"dropship-sync/feature/catalog/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd runs the HTTP trigger server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sync trigger server",
	Long: `Starts an HTTP server exposing health, status, and sync trigger
endpoints. Sync runs execute in the background; only one run is admitted
at a time.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to bootstrap: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		runner := newSyncRunner(cfg, logg)

		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging middleware (Zap + RayID)
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

		// Auth (protect the API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		app.Get("/api/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/api/status", runner.statusHandler)
		app.Post("/api/sync/:mode", runner.triggerHandler)

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

// syncRunner admits one background sync run at a time and remembers the last
// finished report.
type syncRunner struct {
	cfg *config.Config
	log *zap.Logger

	mu         sync.Mutex
	running    bool
	lastMode   reconcile.Mode
	lastReport *worker.Report
	lastError  string
	finishedAt time.Time
}

func newSyncRunner(cfg *config.Config, log *zap.Logger) *syncRunner {
	return &syncRunner{cfg: cfg, log: log}
}

func (r *syncRunner) statusHandler(c *fiber.Ctx) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	resp := fiber.Map{"running": r.running}
	if r.lastReport != nil {
		resp["last_run"] = fiber.Map{
			"run_id":      r.lastReport.RunID,
			"mode":        r.lastMode,
			"elapsed":     r.lastReport.Elapsed.Round(time.Millisecond).String(),
			"finished_at": r.finishedAt.UTC().Format(time.RFC3339),
			"created":     r.lastReport.Count(worker.StatusCreated),
			"updated":     r.lastReport.Count(worker.StatusUpdated),
			"inventory":   r.lastReport.Count(worker.StatusInventory),
			"missing":     r.lastReport.Count(worker.StatusMissing),
			"failed":      r.lastReport.Count(worker.StatusFailed),
		}
	}
	if r.lastError != "" {
		resp["last_error"] = r.lastError
	}
	return c.JSON(resp)
}

func (r *syncRunner) triggerHandler(c *fiber.Ctx) error {
	mode := reconcile.Mode(c.Params("mode"))
	if mode != reconcile.ModeFull && mode != reconcile.ModeInventory {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "mode must be 'full' or 'inventory'",
		})
	}

	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "a sync run is already in progress",
		})
	}
	r.running = true
	r.mu.Unlock()

	go r.run(mode)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status": "started",
		"mode":   mode,
	})
}

// run executes a full sync pass in the background.
func (r *syncRunner) run(mode reconcile.Mode) {
	ctx := context.Background()
	r.log.Info("Background sync started", zap.String("mode", string(mode)))

	report, err := r.execute(ctx, mode)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	r.finishedAt = time.Now()
	r.lastMode = mode
	r.lastError = ""
	if err != nil {
		r.lastError = err.Error()
		r.log.Error("Background sync failed", zap.Error(err))
		return
	}
	r.lastReport = report
	r.log.Info("Background sync finished",
		zap.String("run_id", report.RunID),
		zap.Int("failed", report.Count(worker.StatusFailed)))
}

func (r *syncRunner) execute(ctx context.Context, mode reconcile.Mode) (*worker.Report, error) {
	store, err := storefront.NewClient(r.cfg.Storefront, r.log)
	if err != nil {
		return nil, err
	}
	dialer := supplier.NewDialer(r.cfg.Supplier, r.log)

	fetcher := catalog.NewFetcher(dialer, r.cfg.Sync.Concurrency, r.log)
	records, err := fetcher.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	engine := reconcile.NewEngine(store,
		reconcile.NewLocationResolver(r.cfg.Storefront.LocationID, r.log), r.log)
	pool := worker.NewPool(r.cfg.Sync.Concurrency, r.log)

	return worker.RunBatch(ctx, pool, records,
		func(p models.ProductRecord) string { return p.SKU },
		engine.Operation(mode)), nil
}
