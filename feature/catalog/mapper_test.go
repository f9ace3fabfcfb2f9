package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProductFromSupplier_StatusFilter tests that only syncable statuses survive.
func TestProductFromSupplier_StatusFilter(t *testing.T) {
	listing := map[string]any{"sku": "X1", "price": "9.99", "qty": "10"}

	tests := []struct {
		status string
		want   bool
	}{
		{"active", true},
		{"Active", true},
		{"out of stock", true},
		{"OUT OF STOCK", true},
		{"discontinued", false},
		{"unavailable", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			_, ok := ProductFromSupplier(listing, map[string]any{"status": tt.status})
			assert.Equal(t, tt.want, ok)
		})
	}
}

// TestProductFromSupplier_NumericCoercion tests string-encoded numerics.
func TestProductFromSupplier_NumericCoercion(t *testing.T) {
	listing := map[string]any{"sku": "X1", "price": "9.99", "qty": "10"}
	info := map[string]any{
		"status":      "active",
		"name":        "Whey 900g",
		"weight":      "950.5",
		"trade_price": 6.5,
		"vat_rate":    "23",
	}

	p, ok := ProductFromSupplier(listing, info)
	require.True(t, ok)
	assert.Equal(t, "X1", p.SKU)
	assert.Equal(t, 9.99, p.Price)
	assert.Equal(t, 10, p.Qty)
	assert.Equal(t, 950.5, p.Weight)
	assert.Equal(t, 6.5, p.TradePrice)
	assert.Equal(t, 23.0, p.VATRate)
}

// TestProductFromSupplier_Defaults tests that missing optional fields default silently.
func TestProductFromSupplier_Defaults(t *testing.T) {
	listing := map[string]any{"sku": "X2"}
	info := map[string]any{"status": "out of stock"}

	p, ok := ProductFromSupplier(listing, info)
	require.True(t, ok)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, "", p.Category)
	assert.Equal(t, "", p.Brand)
	assert.Equal(t, 0.0, p.Weight)
	assert.Equal(t, 0, p.Qty)
	assert.Equal(t, 0, p.PortionCount)
	// Name falls back to the SKU when the detail payload omits it
	assert.Equal(t, "X2", p.Name)
}
