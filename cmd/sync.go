package cmd

import (
	"context"
	"fmt"
	"time"

	"dropship-sync/core/export"
	"dropship-sync/core/storefront"
	"dropship-sync/core/supplier"
	"dropship-sync/core/worker"
	"dropship-sync/feature/catalog"
	"dropship-sync/feature/catalog/models"
	"dropship-sync/feature/catalog/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncSkipSnapshot bool

// syncCmd is the parent command for catalog sync operations.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the supplier catalog to the storefront",
	Long: `Sync fetches the supplier catalog, maps it to canonical product
records, and reconciles each record against the storefront.

A CSV snapshot of the fetched catalog is written before any remote
mutation, so every run leaves an auditable record of its input.`,
}

// syncSeedCmd runs a full sync: create missing products, update existing
// ones, and align inventory.
var syncSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Full sync: create, update, and set inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(reconcile.ModeFull)
	},
}

// syncInventoryCmd runs an inventory-only sync for variants that already exist.
var syncInventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inventory-only sync for existing variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(reconcile.ModeInventory)
	},
}

func init() {
	syncCmd.PersistentFlags().BoolVar(&syncSkipSnapshot, "no-snapshot", false,
		"Skip the pre-run CSV snapshot of the fetched catalog")
	syncCmd.AddCommand(syncSeedCmd)
	syncCmd.AddCommand(syncInventoryCmd)
	RootCmd.AddCommand(syncCmd)
}

func runSync(mode reconcile.Mode) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	store, err := storefront.NewClient(cfg.Storefront, l)
	if err != nil {
		return fmt.Errorf("failed to create storefront client: %w", err)
	}
	dialer := supplier.NewDialer(cfg.Supplier, l)

	l.Info("Starting catalog sync", zap.String("mode", string(mode)))

	fetcher := catalog.NewFetcher(dialer, cfg.Sync.Concurrency, l)
	records, err := fetcher.FetchProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch supplier catalog: %w", err)
	}

	if !syncSkipSnapshot {
		rows, err := export.Rows(records)
		if err != nil {
			return fmt.Errorf("failed to flatten catalog snapshot: %w", err)
		}
		name := export.TimestampedName("products")
		if err := export.WriteFile(name, rows); err != nil {
			return fmt.Errorf("failed to write catalog snapshot: %w", err)
		}
		l.Info("Catalog snapshot written", zap.String("file", name))
	}

	engine := reconcile.NewEngine(store,
		reconcile.NewLocationResolver(cfg.Storefront.LocationID, l), l)
	pool := worker.NewPool(cfg.Sync.Concurrency, l)

	report := worker.RunBatch(ctx, pool, records,
		func(p models.ProductRecord) string { return p.SKU },
		engine.Operation(mode))

	printSyncReport(report)

	if failed := report.Count(worker.StatusFailed); failed > 0 {
		return fmt.Errorf("%d of %d records failed", failed, len(report.Results))
	}
	return nil
}

// printSyncReport prints the per-record outcome lines and the run summary.
func printSyncReport(report *worker.Report) {
	for _, r := range report.Sorted() {
		line := fmt.Sprintf("%s %s %s", statusGlyph(r.Status), r.Key, r.Status)
		if r.Reason != "" {
			line += " (" + r.Reason + ")"
		}
		fmt.Println(line)
	}

	fmt.Printf("\nRun %s finished in %s: %d created, %d updated, %d inventory, %d missing, %d failed\n",
		report.RunID, report.Elapsed.Round(time.Millisecond),
		report.Count(worker.StatusCreated),
		report.Count(worker.StatusUpdated),
		report.Count(worker.StatusInventory),
		report.Count(worker.StatusMissing),
		report.Count(worker.StatusFailed),
	)
}

func statusGlyph(s worker.Status) string {
	switch s {
	case worker.StatusCreated:
		return "🟢"
	case worker.StatusUpdated:
		return "🔄"
	case worker.StatusInventory:
		return "📦"
	case worker.StatusMissing:
		return "⚠️"
	default:
		return "❌"
	}
}
