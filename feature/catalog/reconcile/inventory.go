package reconcile

import (
	"context"
	"fmt"
	"net/http"

	"dropship-sync/core/storefront"

	"go.uber.org/zap"
)

const setOnHandMutation = `
mutation inventorySetOnHand($input: InventorySetOnHandQuantitiesInput!) {
  inventorySetOnHandQuantities(input: $input) {
    userErrors { field message }
    inventoryAdjustmentGroup { createdAt }
  }
}
`

// SetInventory sets the absolute stock level for an inventory item at the
// resolved location. The primary path is the REST set call; stores where
// that endpoint is gone answer 404, which selects the mutation-based
// fallback carrying a "correction" reason. Setting an absolute quantity is
// idempotent, so repeating the call with the same quantity is harmless.
func (e *Engine) SetInventory(ctx context.Context, inventoryItemGID string, qty int) error {
	locationID, err := e.locations.Resolve(ctx, e.store)
	if err != nil {
		return fmt.Errorf("resolve inventory location: %w", err)
	}

	itemID := storefront.GIDNumber(inventoryItemGID)
	e.log.Info("Setting inventory level",
		zap.Int64("inventory_item_id", itemID),
		zap.Int64("location_id", locationID),
		zap.Int("qty", qty),
	)

	body := map[string]any{
		"location_id":       locationID,
		"inventory_item_id": itemID,
		"available":         qty,
	}
	_, err = e.store.Rest(ctx, http.MethodPost, "/inventory_levels/set.json", nil, body, nil)
	if err == nil {
		return nil
	}
	if !storefront.IsNotFound(err) {
		// Transport and other HTTP failures propagate as-is; retry policy
		// belongs to the caller, not this call.
		return err
	}

	e.log.Warn("REST inventory set returned 404, falling back to on-hand mutation",
		zap.Int64("inventory_item_id", itemID))
	return e.setOnHand(ctx, inventoryItemGID, locationID, qty)
}

// setOnHand is the mutation-based fallback for stores without the REST
// inventory endpoint.
func (e *Engine) setOnHand(ctx context.Context, inventoryItemGID string, locationID int64, qty int) error {
	input := map[string]any{
		"reason": "correction",
		"setQuantities": []map[string]any{{
			"inventoryItemId": inventoryItemGID,
			"locationId":      storefront.LocationGID(locationID),
			"quantity":        qty,
		}},
	}

	var resp struct {
		InventorySetOnHandQuantities struct {
			UserErrors []storefront.UserError `json:"userErrors"`
		} `json:"inventorySetOnHandQuantities"`
	}
	if err := e.store.GraphQL(ctx, setOnHandMutation, map[string]any{"input": input}, &resp); err != nil {
		return err
	}

	if errs := resp.InventorySetOnHandQuantities.UserErrors; len(errs) > 0 {
		return &storefront.UserErrorsError{Errors: errs}
	}
	return nil
}
