package cmd

import (
	"context"
	"fmt"

	"dropship-sync/core/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	storefrontFrom string
	storefrontTo   string
	storefrontCSV  string
)

// storefrontCmd is the parent command for storefront order operations.
var storefrontCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Export storefront orders and sync them to the supplier",
}

// storefrontExportCmd exports storefront orders as JSON or CSV.
var storefrontExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export storefront orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := orderService()
		if err != nil {
			return err
		}
		defer l.Sync()

		sorders, err := svc.FetchStorefrontOrders(context.Background(),
			storefrontFrom, storefrontTo, "any")
		if err != nil {
			return err
		}

		if storefrontCSV != "" {
			rows, err := export.Rows(sorders)
			if err != nil {
				return err
			}
			if err := export.WriteFile(storefrontCSV, rows); err != nil {
				return err
			}
			fmt.Printf("✅ CSV written to %s\n", storefrontCSV)
			return nil
		}
		return printJSON(sorders)
	},
}

// storefrontSyncCmd pushes open storefront orders to the supplier.
var storefrontSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push open storefront orders to the supplier",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := orderService()
		if err != nil {
			return err
		}
		defer l.Sync()

		results, err := svc.SyncStorefront(context.Background(), storefrontFrom, storefrontTo)
		if err != nil {
			return err
		}
		for _, r := range results {
			l.Info("Storefront order synced",
				zap.String("order", r.ID), zap.String("status", r.Status))
		}
		return printJSON(results)
	},
}

func init() {
	storefrontCmd.PersistentFlags().StringVar(&storefrontFrom, "from", "", "Start date (YYYY-MM-DD)")
	storefrontCmd.PersistentFlags().StringVar(&storefrontTo, "to", "", "End date (YYYY-MM-DD)")
	storefrontExportCmd.Flags().StringVar(&storefrontCSV, "csv", "", "Write output to a CSV file instead of JSON")

	storefrontCmd.AddCommand(storefrontExportCmd)
	storefrontCmd.AddCommand(storefrontSyncCmd)
	RootCmd.AddCommand(storefrontCmd)
}
