package orders

import (
	"testing"

	"dropship-sync/feature/orders/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// TestOrderToSupplier_FullOrder tests the complete storefront-to-supplier mapping.
func TestOrderToSupplier_FullOrder(t *testing.T) {
	o := models.StorefrontOrder{
		ID:          450789469,
		Name:        "#1003",
		Email:       "jane@example.com",
		Currency:    "GBP",
		Note:        "leave at door",
		CreatedAt:   "2026-08-12T10:15:00+01:00",
		TotalWeight: 1500,
		LineItems: []models.StorefrontLine{{
			SKU:      "X1",
			Name:     "Whey 900g",
			Quantity: 2,
			Price:    dec("19.99"),
			TaxLines: []models.TaxLine{{Rate: dec("0.23")}},
		}},
		ShippingLines: []models.ShippingLine{
			{Title: "Standard", Price: dec("4.50")},
			{Title: "Express", Price: dec("9.00")},
		},
		ShippingAddress: &models.StorefrontAddress{
			FirstName: "Jane", LastName: "Doe",
			Address1: "1 High St", Zip: "AB1 2CD", City: "Leeds",
			Province: "Yorkshire", Country: "United Kingdom", CountryCode: "GB",
			Phone: "07000000000",
		},
	}

	p := OrderToSupplier(o)

	assert.Equal(t, "#1003", p.ID)
	assert.Equal(t, "on hold", p.Status)
	assert.Equal(t, 1, p.CurrencyRate)
	assert.Equal(t, "2026-08-12", p.DateAdd)
	assert.Equal(t, "leave at door", p.Comment)
	assert.Equal(t, 1.5, p.Weight)

	// Only the first shipping line is carried.
	assert.Equal(t, "Standard", p.TransportCode)
	assert.Equal(t, 4.5, p.ShippingPrice)

	require.Len(t, p.Products, 1)
	assert.Equal(t, "X1", p.Products[0].SKU)
	assert.Equal(t, 2, p.Products[0].Qty)
	assert.Equal(t, 19.99, p.Products[0].Price)
	assert.Equal(t, "GBP", p.Products[0].Currency)
	assert.Equal(t, 23.0, p.Products[0].Tax)

	assert.Equal(t, "Jane", p.Address.Name)
	assert.Equal(t, "Doe", p.Address.Surname)
	assert.Equal(t, "AB1 2CD", p.Address.Postcode)
	assert.Equal(t, "jane@example.com", p.Address.Email)
}

// TestOrderToSupplier_IDFallback tests that a blank order name falls back to
// the numeric id.
func TestOrderToSupplier_IDFallback(t *testing.T) {
	p := OrderToSupplier(models.StorefrontOrder{ID: 450789469})
	assert.Equal(t, "450789469", p.ID)
}

// TestOrderToSupplier_AddressFallback tests shipping → billing → empty.
func TestOrderToSupplier_AddressFallback(t *testing.T) {
	billing := &models.StorefrontAddress{FirstName: "Bill", City: "York"}

	p := OrderToSupplier(models.StorefrontOrder{Email: "b@example.com", BillingAddress: billing})
	assert.Equal(t, "Bill", p.Address.Name)
	assert.Equal(t, "York", p.Address.City)
	assert.Equal(t, "b@example.com", p.Address.Email)

	p = OrderToSupplier(models.StorefrontOrder{Email: "n@example.com"})
	assert.Equal(t, models.Address{Email: "n@example.com"}, p.Address)
}

// TestOrderToSupplier_TaxSumsRates tests that multiple tax lines sum before
// scaling to a percentage, and that no tax lines yield zero.
func TestOrderToSupplier_TaxSumsRates(t *testing.T) {
	o := models.StorefrontOrder{LineItems: []models.StorefrontLine{
		{SKU: "A", TaxLines: []models.TaxLine{{Rate: dec("0.20")}, {Rate: dec("0.05")}}},
		{SKU: "B"},
	}}

	p := OrderToSupplier(o)
	require.Len(t, p.Products, 2)
	assert.Equal(t, 25.0, p.Products[0].Tax)
	assert.Equal(t, 0.0, p.Products[1].Tax)
}

// TestOrderToSupplier_CurrencyDefault tests the EUR default on lines.
func TestOrderToSupplier_CurrencyDefault(t *testing.T) {
	o := models.StorefrontOrder{LineItems: []models.StorefrontLine{{SKU: "A", Quantity: 1}}}
	p := OrderToSupplier(o)
	assert.Equal(t, "EUR", p.Products[0].Currency)
}

// TestOrderFromSupplier tests normalization of a raw supplier order.
func TestOrderFromSupplier(t *testing.T) {
	raw := map[string]any{
		"order_id":          "#1001",
		"supplier_order_id": float64(55001),
		"status":            "shipped",
		"address1":          "1 High St",
		"country_code":      "GB",
		"products": []any{map[string]any{
			"product_id": "7",
			"sku":        "X1",
			"name":       "Whey",
			"qty":        "2",
			"price":      "19.99",
			"currency":   "GBP",
			"tax":        "23",
		}},
	}

	rec := OrderFromSupplier(raw)
	assert.Equal(t, "#1001", rec.OrderID)
	assert.Equal(t, "55001", rec.SupplierOrderID)
	assert.Equal(t, "shipped", rec.Status)
	assert.Equal(t, "", rec.City)
	require.Len(t, rec.Products, 1)
	assert.Equal(t, 2, rec.Products[0].Qty)
	assert.Equal(t, 19.99, rec.Products[0].Price)
	assert.Equal(t, 23.0, rec.Products[0].Tax)
}

// TestRefundFromSupplier tests normalization of a raw supplier refund.
func TestRefundFromSupplier(t *testing.T) {
	raw := map[string]any{
		"parent_id":          "#1001",
		"refund_tax_amount":  "4.60",
		"subtotal":           "19.99",
		"refund_grand_total": "24.59",
		"is_refund_shipping": "1",
		"refund_shipping":    0,
		"items": []any{map[string]any{
			"sku":            "X1",
			"qty_refunded":   1,
			"price":          "19.99",
			"price_incl_tax": "24.59",
			"row_total":      "19.99",
		}},
	}

	rec := RefundFromSupplier(raw)
	assert.Equal(t, "#1001", rec.ParentID)
	assert.Equal(t, 4.6, rec.RefundTaxAmount)
	assert.True(t, rec.IsRefundShipping)
	require.Len(t, rec.Items, 1)
	assert.Equal(t, 1, rec.Items[0].QtyRefunded)
	assert.Equal(t, 24.59, rec.Items[0].PriceInclTax)
}
