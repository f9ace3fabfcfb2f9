// Package export writes batches of records to CSV files or streams.
// It is used by the CLI export commands for products, orders, and refunds.
package export
