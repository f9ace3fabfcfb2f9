package models

// ProductRecord is the canonical product shape used throughout a sync run.
// It is constructed from supplier data per run and never persisted locally.
type ProductRecord struct {
	// SKU is the sole join key between supplier and storefront catalogs.
	SKU string `json:"sku"`
	// Price is the selling price pushed to the storefront variant.
	Price float64 `json:"price"`
	// TradePrice is the supplier's wholesale price.
	TradePrice float64 `json:"trade_price"`
	// DetailPrice is the supplier's recommended retail price.
	DetailPrice float64 `json:"detail_price"`
	// Weight is the product weight in grams.
	Weight float64 `json:"weight"`
	// Qty is the stock quantity at the supplier.
	Qty int `json:"qty"`

	Name          string `json:"name"`
	Description   string `json:"description"`
	DescriptionEN string `json:"description_en"`
	DescriptionPL string `json:"description_pl"`
	Brand         string `json:"brand"`
	Category      string `json:"category"`
	URL           string `json:"url"`
	Image         string `json:"image"`
	// Status is the supplier lifecycle status ("active", "out of stock").
	Status string `json:"status"`

	VATRate         float64 `json:"vat_rate"`
	Save            float64 `json:"save"`
	SavePercent     float64 `json:"save_percent"`
	PortionCount    int     `json:"portion_count"`
	PricePerServing float64 `json:"price_per_serving"`
}

// VariantRef is the storefront-side handle for one SKU. It is always
// re-fetched by SKU lookup and never cached across runs, because variant
// and inventory-item ids can change out from under a stale cache.
type VariantRef struct {
	// ID is the variant's GraphQL global id.
	ID string `json:"id"`
	// InventoryItemID is the global id of the variant's inventory item.
	InventoryItemID string `json:"inventory_item_id"`
	// SKU echoes the matched SKU.
	SKU string `json:"sku"`
}
