package reconcile

import (
	"context"
	"fmt"
	"net/http"

	"dropship-sync/core/storefront"
	"dropship-sync/core/worker"
	"dropship-sync/feature/catalog/models"

	"go.uber.org/zap"
)

// Mode selects how far a product reconciliation goes.
type Mode string

const (
	// ModeFull creates or updates the variant, then reconciles inventory.
	ModeFull Mode = "full"
	// ModeInventory only reconciles inventory for variants that exist.
	ModeInventory Mode = "inventory"
)

// Engine decides, per product record, whether a matching storefront variant
// exists, whether it should be created or updated, and how its inventory
// level is brought in line with supplier stock.
//
// The engine holds no per-record state. Record existence is always re-derived
// from the storefront, so a partially applied record (created but inventory
// write failed) converges on the next run.
type Engine struct {
	store     storefront.Client
	locations *LocationResolver
	log       *zap.Logger
}

// NewEngine creates a reconciliation engine.
func NewEngine(store storefront.Client, locations *LocationResolver, log *zap.Logger) *Engine {
	return &Engine{store: store, locations: locations, log: log}
}

// Operation returns the per-record worker operation for the given mode.
func (e *Engine) Operation(mode Mode) worker.Operation[models.ProductRecord] {
	return func(ctx context.Context, p models.ProductRecord) (worker.Status, error) {
		return e.Reconcile(ctx, p, mode)
	}
}

// Reconcile runs the per-record state machine and returns its terminal state.
func (e *Engine) Reconcile(ctx context.Context, p models.ProductRecord, mode Mode) (worker.Status, error) {
	if p.SKU == "" {
		return "", fmt.Errorf("record has no SKU and cannot be reconciled")
	}

	variant, err := e.findVariant(ctx, p.SKU)
	if err != nil {
		return "", err
	}

	if mode == ModeInventory {
		if variant == nil {
			return worker.StatusMissing, nil
		}
		if err := e.SetInventory(ctx, variant.InventoryItemID, p.Qty); err != nil {
			return "", err
		}
		return worker.StatusInventory, nil
	}

	if variant != nil {
		if err := e.updateVariant(ctx, variant.ID, p); err != nil {
			return "", err
		}
		if err := e.SetInventory(ctx, variant.InventoryItemID, p.Qty); err != nil {
			return "", err
		}
		return worker.StatusUpdated, nil
	}

	if err := e.createProduct(ctx, p); err != nil {
		return "", err
	}

	// Re-query for the variant the create just made. If the lookup does not
	// surface it yet, skip the inventory step; the next run converges.
	created, err := e.findVariant(ctx, p.SKU)
	if err != nil || created == nil {
		e.log.Warn("Created variant not found on re-query; skipping inventory",
			zap.String("sku", p.SKU), zap.Error(err))
		return worker.StatusCreated, nil
	}
	if err := e.SetInventory(ctx, created.InventoryItemID, p.Qty); err != nil {
		return "", err
	}
	return worker.StatusCreated, nil
}

const variantBySKUQuery = `query($q:String!){ productVariants(first:1,query:$q){edges{node{id sku inventoryItem{id}}}} }`

// findVariant looks up the storefront variant matching a SKU. Exactly one
// result is expected; the first match wins if the catalog holds duplicates.
func (e *Engine) findVariant(ctx context.Context, sku string) (*models.VariantRef, error) {
	var resp struct {
		ProductVariants struct {
			Edges []struct {
				Node struct {
					ID            string `json:"id"`
					SKU           string `json:"sku"`
					InventoryItem struct {
						ID string `json:"id"`
					} `json:"inventoryItem"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"productVariants"`
	}

	err := e.store.GraphQL(ctx, variantBySKUQuery, map[string]any{"q": "sku:" + sku}, &resp)
	if err != nil {
		return nil, fmt.Errorf("variant lookup for %s: %w", sku, err)
	}

	edges := resp.ProductVariants.Edges
	if len(edges) == 0 {
		return nil, nil
	}
	node := edges[0].Node
	return &models.VariantRef{
		ID:              node.ID,
		InventoryItemID: node.InventoryItem.ID,
		SKU:             node.SKU,
	}, nil
}

// createProduct creates a new product with a single variant. Inventory is
// tracked at the platform-managed level with a "continue selling when out
// of stock" policy, matching how supplier-backed items behave.
func (e *Engine) createProduct(ctx context.Context, p models.ProductRecord) error {
	e.log.Info("Creating storefront product", zap.String("sku", p.SKU))

	images := []map[string]any{}
	if p.Image != "" {
		images = append(images, map[string]any{"src": p.Image})
	}

	body := map[string]any{"product": map[string]any{
		"title":     p.Name,
		"body_html": p.Description,
		"vendor":    p.Brand,
		"status":    "active",
		"variants": []map[string]any{{
			"sku":                  p.SKU,
			"price":                p.Price,
			"inventory_management": "SHOPIFY",
			"inventory_policy":     "continue",
			"weight":               p.Weight,
			"weight_unit":          "g",
		}},
		"images": images,
	}}

	_, err := e.store.Rest(ctx, http.MethodPost, "/products.json", nil, body, nil)
	if err != nil {
		return fmt.Errorf("create product %s: %w", p.SKU, err)
	}
	return nil
}

// updateVariant pushes price, weight, and sku onto an existing variant.
func (e *Engine) updateVariant(ctx context.Context, variantGID string, p models.ProductRecord) error {
	vid := storefront.GIDNumber(variantGID)
	e.log.Info("Updating storefront variant",
		zap.Int64("variant_id", vid), zap.String("sku", p.SKU))

	body := map[string]any{"variant": map[string]any{
		"id":     vid,
		"price":  p.Price,
		"weight": p.Weight,
		"sku":    p.SKU,
	}}

	_, err := e.store.Rest(ctx, http.MethodPut, fmt.Sprintf("/variants/%d.json", vid), nil, body, nil)
	if err != nil {
		return fmt.Errorf("update variant %s: %w", p.SKU, err)
	}
	return nil
}
