package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"dropship-sync/core/storefront"
	"dropship-sync/core/supplier"
	"dropship-sync/feature/orders"
	"dropship-sync/feature/orders/models"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	ordersFrom string
	ordersTo   string
	ordersIDs  string
)

// ordersCmd is the parent command for supplier order operations.
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Export and push supplier orders",
}

// ordersExportCmd exports supplier orders as JSON on stdout.
var ordersExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export supplier orders as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := orderService()
		if err != nil {
			return err
		}
		defer l.Sync()

		records, err := svc.FetchOrders(context.Background(), orderFilter())
		if err != nil {
			return err
		}
		return printJSON(records)
	},
}

// ordersPushCmd pushes orders from a JSON file to the supplier.
var ordersPushCmd = &cobra.Command{
	Use:   "push <file>",
	Short: "Push orders from a JSON file to the supplier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := orderService()
		if err != nil {
			return err
		}
		defer l.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read orders file: %w", err)
		}
		var payloads []models.OrderPayload
		if err := json.Unmarshal(data, &payloads); err != nil {
			return fmt.Errorf("failed to parse orders file: %w", err)
		}

		results, err := svc.PushAll(context.Background(), payloads)
		if err != nil {
			return err
		}
		for _, r := range results {
			l.Info("Push result", zap.String("order", r.ID), zap.String("status", r.Status))
		}
		return printJSON(results)
	},
}

func init() {
	ordersExportCmd.Flags().StringVar(&ordersFrom, "from", "", "Start date (YYYY-MM-DD)")
	ordersExportCmd.Flags().StringVar(&ordersTo, "to", "", "End date (YYYY-MM-DD)")
	ordersExportCmd.Flags().StringVar(&ordersIDs, "ids", "", "Comma-separated list of order IDs")

	ordersCmd.AddCommand(ordersExportCmd)
	ordersCmd.AddCommand(ordersPushCmd)
	RootCmd.AddCommand(ordersCmd)
}

func orderFilter() orders.Filter {
	f := orders.Filter{From: ordersFrom, To: ordersTo}
	if ordersIDs != "" {
		f.IDs = strings.Split(ordersIDs, ",")
	}
	return f
}

// orderService wires the supplier and storefront clients into an order service.
func orderService() (*orders.Service, *zap.Logger, error) {
	cfg, l, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}

	store, err := storefront.NewClient(cfg.Storefront, l)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storefront client: %w", err)
	}
	dialer := supplier.NewDialer(cfg.Supplier, l)

	return orders.NewService(dialer, store, l), l, nil
}

// printJSON writes an indented JSON document to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
