package catalog

import (
	"context"
	"fmt"
	"sync"

	"dropship-sync/core/supplier"
	"dropship-sync/core/utils"
	"dropship-sync/feature/catalog/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fetcher pulls the product catalog from the supplier API.
type Fetcher struct {
	dialer      supplier.Dialer
	concurrency int
	log         *zap.Logger
}

// NewFetcher creates a catalog fetcher. concurrency bounds the parallel
// product-info calls; non-positive values fall back to a single worker.
func NewFetcher(dialer supplier.Dialer, concurrency int, log *zap.Logger) *Fetcher {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Fetcher{dialer: dialer, concurrency: concurrency, log: log}
}

// FetchProducts retrieves the full product list, enriches each listing with
// its detail payload, and maps the result to canonical records. Products
// whose status excludes them from sync are dropped here.
func (f *Fetcher) FetchProducts(ctx context.Context) ([]models.ProductRecord, error) {
	f.log.Info("Fetching product list from supplier")

	sess, err := f.dialer.Login(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close(ctx)

	raw, err := sess.Call(ctx, supplier.ProcGetProductList)
	if err != nil {
		return nil, fmt.Errorf("fetch product list: %w", err)
	}
	listings := supplier.Decode[[]map[string]any](raw)
	f.log.Debug("Received product listings", zap.Int("count", len(listings)))

	var (
		mu      sync.Mutex
		records []models.ProductRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for _, listing := range listings {
		g.Go(func() error {
			pid := utils.ToInt(listing["product_id"])
			rawInfo, err := sess.Call(gctx, supplier.ProcGetProductInfo, pid)
			if err != nil {
				return fmt.Errorf("fetch product info %d: %w", pid, err)
			}
			info := supplier.Decode[map[string]any](rawInfo)

			record, ok := ProductFromSupplier(listing, info)
			if !ok {
				return nil
			}

			mu.Lock()
			records = append(records, record)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	f.log.Info("Fetched syncable products", zap.Int("count", len(records)))
	return records, nil
}

// RawProductList retrieves the unmapped supplier product list, used by the
// products export command.
func (f *Fetcher) RawProductList(ctx context.Context) ([]map[string]any, error) {
	sess, err := f.dialer.Login(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close(ctx)

	raw, err := sess.Call(ctx, supplier.ProcGetProductList)
	if err != nil {
		return nil, fmt.Errorf("fetch product list: %w", err)
	}
	return supplier.Decode[[]map[string]any](raw), nil
}
