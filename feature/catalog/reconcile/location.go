package reconcile

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"

	"dropship-sync/core/storefront"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const firstLocationQuery = `query{ locations(first:1){edges{node{id legacyResourceId}}} }`

// LocationResolver resolves the inventory location id for a sync run.
//
// When the configured id is numeric it is used directly. Otherwise the
// storefront's first available location is detected once and reused for the
// remainder of the run. The resolver is run-scoped: a new run builds a new
// resolver, so a location change between runs is always picked up.
type LocationResolver struct {
	configured string
	resolved   atomic.Int64
	sf         singleflight.Group
	log        *zap.Logger
}

// NewLocationResolver creates a resolver seeded with the configured
// location id, which may be empty or non-numeric.
func NewLocationResolver(configured string, log *zap.Logger) *LocationResolver {
	return &LocationResolver{configured: configured, log: log}
}

// Resolve returns the location id to write inventory against. Detection
// runs at most once per run even under concurrent callers: singleflight
// collapses simultaneous lookups and the result is published with a
// compare-and-set, which keeps repeated publishes idempotent.
func (r *LocationResolver) Resolve(ctx context.Context, client storefront.Client) (int64, error) {
	if id, err := strconv.ParseInt(r.configured, 10, 64); err == nil && id > 0 {
		return id, nil
	}
	if id := r.resolved.Load(); id > 0 {
		return id, nil
	}

	result, err, _ := r.sf.Do("location", func() (any, error) {
		if id := r.resolved.Load(); id > 0 {
			return id, nil
		}

		var resp struct {
			Locations struct {
				Edges []struct {
					Node struct {
						ID               string `json:"id"`
						LegacyResourceID string `json:"legacyResourceId"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"locations"`
		}
		if err := client.GraphQL(ctx, firstLocationQuery, nil, &resp); err != nil {
			return int64(0), err
		}
		if len(resp.Locations.Edges) == 0 {
			return int64(0), fmt.Errorf("storefront has no locations")
		}

		id, err := strconv.ParseInt(resp.Locations.Edges[0].Node.LegacyResourceID, 10, 64)
		if err != nil || id <= 0 {
			return int64(0), fmt.Errorf("storefront returned invalid location id %q",
				resp.Locations.Edges[0].Node.LegacyResourceID)
		}

		r.resolved.CompareAndSwap(0, id)
		r.log.Warn("Configured location id missing or invalid; using detected location",
			zap.Int64("location_id", id))
		return r.resolved.Load(), nil
	})
	if err != nil {
		return 0, err
	}
	return result.(int64), nil
}
