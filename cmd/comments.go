package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	commentOrderID int
	commentAuthor  string
	commentMessage string
)

// commentsCmd is the parent command for order comment operations.
var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Read and write supplier order comments",
}

// commentsListCmd lists recent supplier order comments.
var commentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent order comments",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := orderService()
		if err != nil {
			return err
		}
		defer l.Sync()

		comments, err := svc.Comments(context.Background())
		if err != nil {
			return err
		}
		return printJSON(comments)
	},
}

// commentsAddCmd attaches a comment to a supplier order.
var commentsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Attach a comment to a supplier order",
	RunE: func(cmd *cobra.Command, args []string) error {
		if commentOrderID == 0 {
			return fmt.Errorf("--order is required")
		}
		if commentMessage == "" {
			return fmt.Errorf("--message is required")
		}

		svc, l, err := orderService()
		if err != nil {
			return err
		}
		defer l.Sync()

		if err := svc.InsertComment(context.Background(),
			commentOrderID, commentAuthor, commentMessage); err != nil {
			return err
		}
		fmt.Printf("✅ Comment added to order %d\n", commentOrderID)
		return nil
	},
}

func init() {
	commentsAddCmd.Flags().IntVar(&commentOrderID, "order", 0, "Supplier order id")
	commentsAddCmd.Flags().StringVar(&commentAuthor, "author", "dropship-sync", "Comment author name")
	commentsAddCmd.Flags().StringVar(&commentMessage, "message", "", "Comment text")

	commentsCmd.AddCommand(commentsListCmd)
	commentsCmd.AddCommand(commentsAddCmd)
	RootCmd.AddCommand(commentsCmd)
}
