// Package worker provides the bounded fan-out used to apply reconciliation
// operations across a batch of records.
//
// Each record is an independent unit of work keyed by its SKU. A fixed pool
// of workers (default 5) executes one record's operation to completion before
// taking the next. Failures are isolated per record: errors and panics inside
// an operation become a failed result for that key and never affect the rest
// of the batch. Completion order is unordered; the aggregate Report is keyed
// by SKU, so output ordering is irrelevant to correctness.
package worker
