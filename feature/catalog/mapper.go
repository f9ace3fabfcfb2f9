package catalog

import (
	"strings"

	"dropship-sync/core/utils"
	"dropship-sync/feature/catalog/models"
)

// syncableStatuses are the supplier lifecycle statuses that participate in
// sync. Everything else (discontinued, unavailable) is dropped before
// reconciliation.
var syncableStatuses = map[string]struct{}{
	"active":       {},
	"out of stock": {},
}

// ProductFromSupplier maps a supplier listing plus its detail payload into
// the canonical product record. The mapping is pure: numeric fields are
// coerced (the supplier encodes most of them as strings), missing optional
// fields default to empty or zero, and no remote call is ever made here.
//
// The second return value is false when the product's status excludes it
// from sync.
func ProductFromSupplier(listing, info map[string]any) (models.ProductRecord, bool) {
	status := strings.ToLower(utils.ToString(info["status"]))
	if _, ok := syncableStatuses[status]; !ok {
		return models.ProductRecord{}, false
	}

	sku := utils.ToString(listing["sku"])
	name := utils.ToString(info["name"])
	if name == "" {
		name = sku
	}

	return models.ProductRecord{
		SKU:             sku,
		Price:           utils.ToFloat(listing["price"]),
		TradePrice:      utils.ToFloat(info["trade_price"]),
		DetailPrice:     utils.ToFloat(info["detail_price"]),
		Weight:          utils.ToFloat(info["weight"]),
		Qty:             utils.ToInt(listing["qty"]),
		Name:            name,
		Description:     utils.ToString(info["description_en"]),
		DescriptionEN:   utils.ToString(info["description_en"]),
		DescriptionPL:   utils.ToString(info["description_pl"]),
		Brand:           utils.ToString(info["manufacturer"]),
		Category:        utils.ToString(info["category"]),
		URL:             utils.ToString(info["url"]),
		Image:           utils.ToString(info["image"]),
		Status:          utils.ToString(info["status"]),
		VATRate:         utils.ToFloat(info["vat_rate"]),
		Save:            utils.ToFloat(info["save"]),
		SavePercent:     utils.ToFloat(info["save_percent"]),
		PortionCount:    utils.ToInt(info["portion_count"]),
		PricePerServing: utils.ToFloat(info["price_per_serving"]),
	}, true
}
