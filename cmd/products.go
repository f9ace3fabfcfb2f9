package cmd

import (
	"context"
	"fmt"

	"dropship-sync/core/export"
	"dropship-sync/core/supplier"
	"dropship-sync/feature/catalog"

	"github.com/spf13/cobra"
)

var productsCSV string

// productsCmd exports the raw supplier product list.
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Export the raw supplier product list",
	Long: `Export the supplier's product list exactly as the API returns it,
without status filtering or mapping. Useful for pricing audits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		dialer := supplier.NewDialer(cfg.Supplier, l)
		fetcher := catalog.NewFetcher(dialer, cfg.Sync.Concurrency, l)

		raw, err := fetcher.RawProductList(context.Background())
		if err != nil {
			return err
		}

		if productsCSV != "" {
			if err := export.WriteFile(productsCSV, raw); err != nil {
				return err
			}
			fmt.Printf("✅ CSV written to %s\n", productsCSV)
			return nil
		}
		return printJSON(raw)
	},
}

func init() {
	productsCmd.Flags().StringVar(&productsCSV, "csv", "", "Write output to a CSV file instead of JSON")
	RootCmd.AddCommand(productsCmd)
}
