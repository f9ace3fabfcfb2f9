package cmd

import (
	"context"

	"dropship-sync/feature/orders"

	"github.com/spf13/cobra"
)

var (
	refundsFrom string
	refundsTo   string
)

// refundsCmd is the parent command for supplier refund operations.
var refundsCmd = &cobra.Command{
	Use:   "refunds",
	Short: "Export supplier refund orders",
}

// refundsExportCmd exports supplier refunds as JSON on stdout.
var refundsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export supplier refunds as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := orderService()
		if err != nil {
			return err
		}
		defer l.Sync()

		refunds, err := svc.FetchRefunds(context.Background(),
			orders.Filter{From: refundsFrom, To: refundsTo})
		if err != nil {
			return err
		}
		return printJSON(refunds)
	},
}

func init() {
	refundsExportCmd.Flags().StringVar(&refundsFrom, "from", "", "Start date (YYYY-MM-DD)")
	refundsExportCmd.Flags().StringVar(&refundsTo, "to", "", "End date (YYYY-MM-DD)")

	refundsCmd.AddCommand(refundsExportCmd)
	RootCmd.AddCommand(refundsCmd)
}
