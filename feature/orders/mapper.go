package orders

import (
	"strconv"

	"dropship-sync/core/utils"
	"dropship-sync/feature/orders/models"

	"github.com/shopspring/decimal"
)

// OrderFromSupplier normalizes a raw supplier order into an OrderRecord.
// Missing address and contact fields become empty strings, missing numerics
// zero.
func OrderFromSupplier(raw map[string]any) models.OrderRecord {
	rec := models.OrderRecord{
		OrderID:         utils.ToString(raw["order_id"]),
		SupplierOrderID: utils.ToString(raw["supplier_order_id"]),
		Status:          utils.ToString(raw["status"]),
		Address1:        utils.ToString(raw["address1"]),
		Address2:        utils.ToString(raw["address2"]),
		Address3:        utils.ToString(raw["address3"]),
		Postcode:        utils.ToString(raw["postcode"]),
		City:            utils.ToString(raw["city"]),
		County:          utils.ToString(raw["county"]),
		CountryName:     utils.ToString(raw["country_name"]),
		CountryCode:     utils.ToString(raw["country_code"]),
		Phone:           utils.ToString(raw["phone"]),
		Email:           utils.ToString(raw["email"]),
		Products:        []models.OrderItem{},
	}

	items, _ := raw["products"].([]any)
	for _, it := range items {
		item, ok := it.(map[string]any)
		if !ok {
			continue
		}
		rec.Products = append(rec.Products, models.OrderItem{
			ProductID: utils.ToString(item["product_id"]),
			SKU:       utils.ToString(item["sku"]),
			Name:      utils.ToString(item["name"]),
			Qty:       utils.ToInt(item["qty"]),
			Price:     utils.ToFloat(item["price"]),
			Currency:  utils.ToString(item["currency"]),
			Tax:       utils.ToFloat(item["tax"]),
		})
	}
	return rec
}

// RefundFromSupplier normalizes a raw supplier refund into a RefundRecord.
func RefundFromSupplier(raw map[string]any) models.RefundRecord {
	rec := models.RefundRecord{
		ParentID:         utils.ToString(raw["parent_id"]),
		RefundTaxAmount:  utils.ToFloat(raw["refund_tax_amount"]),
		Subtotal:         utils.ToFloat(raw["subtotal"]),
		RefundGrandTotal: utils.ToFloat(raw["refund_grand_total"]),
		IsRefundShipping: utils.ToBool(raw["is_refund_shipping"]),
		RefundShipping:   utils.ToFloat(raw["refund_shipping"]),
		Items:            []models.RefundItem{},
	}

	items, _ := raw["items"].([]any)
	for _, it := range items {
		item, ok := it.(map[string]any)
		if !ok {
			continue
		}
		rec.Items = append(rec.Items, models.RefundItem{
			SKU:          utils.ToString(item["sku"]),
			QtyRefunded:  utils.ToInt(item["qty_refunded"]),
			Price:        utils.ToFloat(item["price"]),
			PriceInclTax: utils.ToFloat(item["price_incl_tax"]),
			RowTotal:     utils.ToFloat(item["row_total"]),
		})
	}
	return rec
}

// taxPercent is the per-line tax carried to the supplier: the sum of all
// tax-line rates times 100. Rates are fractional, so a single 23% line
// yields 23. Multiple tax lines sum before scaling, mirroring how supplier
// invoices expect a single combined figure.
func taxPercent(lines []models.TaxLine) float64 {
	if len(lines) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Rate)
	}
	return sum.Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// OrderToSupplier converts a storefront order into the payload accepted by
// the supplier's order procedures.
//
// The storefront's human-facing order name (e.g. "#1003") is the supplier
// id; the numeric id is the fallback when the name is blank. The address
// prefers shipping, falls back to billing, and degrades to an empty block
// when the order carries neither. Only the first shipping line is priced.
func OrderToSupplier(o models.StorefrontOrder) models.OrderPayload {
	id := o.Name
	if id == "" {
		id = strconv.FormatInt(o.ID, 10)
	}

	currency := o.Currency
	if currency == "" {
		currency = "EUR"
	}

	items := make([]models.OrderItem, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		items = append(items, models.OrderItem{
			SKU:      li.SKU,
			Name:     li.Name,
			Qty:      li.Quantity,
			Price:    li.Price.InexactFloat64(),
			Currency: currency,
			Tax:      taxPercent(li.TaxLines),
		})
	}

	var shippingPrice float64
	var transportCode string
	if len(o.ShippingLines) > 0 {
		shippingPrice = o.ShippingLines[0].Price.InexactFloat64()
		transportCode = o.ShippingLines[0].Title
	}

	dateAdd := o.CreatedAt
	if len(dateAdd) > 10 {
		dateAdd = dateAdd[:10]
	}

	return models.OrderPayload{
		ID:            id,
		Status:        "on hold",
		CurrencyRate:  1,
		TransportCode: transportCode,
		Weight:        o.TotalWeight / 1000.0, // storefront reports grams
		DateAdd:       dateAdd,
		Comment:       o.Note,
		ShippingPrice: shippingPrice,
		Address:       payloadAddress(o),
		Products:      items,
	}
}

// payloadAddress maps the order's best available address block.
func payloadAddress(o models.StorefrontOrder) models.Address {
	addr := o.ShippingAddress
	if addr == nil {
		addr = o.BillingAddress
	}
	if addr == nil {
		return models.Address{Email: o.Email}
	}
	return models.Address{
		Name:        addr.FirstName,
		Surname:     addr.LastName,
		Address1:    addr.Address1,
		Address2:    addr.Address2,
		Postcode:    addr.Zip,
		City:        addr.City,
		County:      addr.Province,
		CountryName: addr.Country,
		CountryCode: addr.CountryCode,
		Phone:       addr.Phone,
		Email:       o.Email,
	}
}
