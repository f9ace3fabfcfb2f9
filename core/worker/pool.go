package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker count used when none is configured.
const DefaultConcurrency = 5

// Status is the terminal state of a single record's reconciliation.
type Status string

const (
	// StatusCreated means a new remote record was created.
	StatusCreated Status = "created"
	// StatusUpdated means an existing remote record was updated.
	StatusUpdated Status = "updated"
	// StatusInventory means only the inventory level was reconciled.
	StatusInventory Status = "inventory"
	// StatusMissing means no remote record exists and none was created.
	StatusMissing Status = "missing"
	// StatusFailed means the record's operation failed; Reason carries why.
	StatusFailed Status = "failed"
)

// Result is the outcome for a single record, keyed by its SKU.
type Result struct {
	// Key is the record's join key (SKU).
	Key string `json:"key"`
	// Status is the terminal state reached.
	Status Status `json:"status"`
	// Reason holds the failure message when Status is StatusFailed.
	Reason string `json:"reason,omitempty"`
}

// Operation reconciles one record and reports its terminal status.
type Operation[T any] func(ctx context.Context, item T) (Status, error)

// Pool fans reconciliation operations out across a bounded set of workers.
type Pool struct {
	limit int
	log   *zap.Logger
}

// NewPool creates a pool with the given concurrency limit.
// A non-positive limit falls back to DefaultConcurrency.
func NewPool(limit int, log *zap.Logger) *Pool {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	return &Pool{limit: limit, log: log}
}

// RunBatch applies op to every item with bounded parallelism. Failures are
// isolated per record: an error or panic inside op is recorded as a failed
// result for that record's key and never cancels the rest of the batch.
// The report contains exactly one result per input item.
func RunBatch[T any](ctx context.Context, p *Pool, items []T, key func(T) string, op Operation[T]) *Report {
	report := NewReport(len(items))

	var mu sync.Mutex
	g := &errgroup.Group{}
	g.SetLimit(p.limit)

	start := time.Now()
	p.log.Info("Starting batch",
		zap.String("run_id", report.RunID),
		zap.Int("records", len(items)),
		zap.Int("concurrency", p.limit),
	)

	for _, item := range items {
		g.Go(func() error {
			result := runOne(ctx, item, key, op)

			mu.Lock()
			report.add(result)
			mu.Unlock()

			if result.Status == StatusFailed {
				p.log.Warn("Record failed",
					zap.String("run_id", report.RunID),
					zap.String("key", result.Key),
					zap.String("reason", result.Reason),
				)
			}
			// Worker errors never cross the pool boundary.
			return nil
		})
	}
	_ = g.Wait()

	report.Elapsed = time.Since(start)
	p.log.Info("Batch finished",
		zap.String("run_id", report.RunID),
		zap.Duration("elapsed", report.Elapsed),
		zap.Int("failed", report.Count(StatusFailed)),
	)
	return report
}

// runOne executes a single operation, converting panics into failed results.
func runOne[T any](ctx context.Context, item T, key func(T) string, op Operation[T]) (result Result) {
	result.Key = key(item)

	defer func() {
		if r := recover(); r != nil {
			result.Status = StatusFailed
			result.Reason = fmt.Sprintf("panic: %v", r)
		}
	}()

	status, err := op(ctx, item)
	if err != nil {
		result.Status = StatusFailed
		result.Reason = err.Error()
		return result
	}
	result.Status = status
	return result
}
