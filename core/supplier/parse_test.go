package supplier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDecode_JSONString tests decoding a JSON payload carried in a string.
func TestDecode_JSONString(t *testing.T) {
	raw := `[{"sku":"ABC-1","qty":"5"},{"sku":"ABC-2","qty":"0"}]`

	items := Decode[[]map[string]any](raw)
	assert.Len(t, items, 2)
	assert.Equal(t, "ABC-1", items[0]["sku"])
	assert.Equal(t, "5", items[0]["qty"])
}

// TestDecode_Object tests decoding a single object payload.
func TestDecode_Object(t *testing.T) {
	raw := `{"api_response":"SUCCESS"}`

	resp := Decode[map[string]any](raw)
	assert.Equal(t, "SUCCESS", resp["api_response"])
}

// TestDecode_InvalidPayload tests that a broken payload yields an empty collection.
func TestDecode_InvalidPayload(t *testing.T) {
	items := Decode[[]map[string]any](`{"not": "a list"`)
	assert.Empty(t, items)

	obj := Decode[map[string]any]("definitely not json")
	assert.Empty(t, obj)
}

// TestDecode_EmptyPayload tests that an empty payload yields an empty collection.
func TestDecode_EmptyPayload(t *testing.T) {
	items := Decode[[]map[string]any]("")
	assert.Empty(t, items)

	items = Decode[[]map[string]any]("   ")
	assert.Empty(t, items)
}

// TestDecode_Typed tests decoding into a typed destination.
func TestDecode_Typed(t *testing.T) {
	type row struct {
		SKU string `json:"sku"`
		Qty int    `json:"qty"`
	}

	rows := Decode[[]row](`[{"sku":"X1","qty":10}]`)
	assert.Len(t, rows, 1)
	assert.Equal(t, "X1", rows[0].SKU)
	assert.Equal(t, 10, rows[0].Qty)
}
