// Package models holds the order-side data shapes: normalized supplier
// records, the payload accepted by the supplier's order procedures, and the
// typed storefront wire structs.
package models

import "github.com/shopspring/decimal"

// OrderRecord is a supplier order normalized for export.
type OrderRecord struct {
	OrderID         string      `json:"order_id"`
	SupplierOrderID string      `json:"supplier_order_id"`
	Status          string      `json:"status"`
	Address1        string      `json:"address1"`
	Address2        string      `json:"address2"`
	Address3        string      `json:"address3"`
	Postcode        string      `json:"postcode"`
	City            string      `json:"city"`
	County          string      `json:"county"`
	CountryName     string      `json:"country_name"`
	CountryCode     string      `json:"country_code"`
	Phone           string      `json:"phone"`
	Email           string      `json:"email"`
	Products        []OrderItem `json:"products"`
}

// OrderItem is a single order line, shared by normalized records and push
// payloads. ProductID is optional on the push side.
type OrderItem struct {
	ProductID string  `json:"product_id,omitempty"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Tax       float64 `json:"tax"`
}

// RefundRecord is a supplier refund normalized for export.
type RefundRecord struct {
	ParentID         string       `json:"parent_id"`
	RefundTaxAmount  float64      `json:"refund_tax_amount"`
	Subtotal         float64      `json:"subtotal"`
	RefundGrandTotal float64      `json:"refund_grand_total"`
	IsRefundShipping bool         `json:"is_refund_shipping"`
	RefundShipping   float64      `json:"refund_shipping"`
	Items            []RefundItem `json:"items"`
}

// RefundItem is a single refunded line.
type RefundItem struct {
	SKU          string  `json:"sku"`
	QtyRefunded  int     `json:"qty_refunded"`
	Price        float64 `json:"price"`
	PriceInclTax float64 `json:"price_incl_tax"`
	RowTotal     float64 `json:"row_total"`
}

// OrderPayload is the shape accepted by the supplier's createOrder and
// updateOrder procedures.
type OrderPayload struct {
	ID            string      `json:"id"`
	Status        string      `json:"status"`
	CurrencyRate  int         `json:"currency_rate"`
	TransportCode string      `json:"transport_code"`
	Weight        float64     `json:"weight"`
	DateAdd       string      `json:"date_add"`
	Comment       string      `json:"comment"`
	ShippingPrice float64     `json:"shipping_price"`
	Address       Address     `json:"address"`
	Products      []OrderItem `json:"products"`
}

// Address is the recipient block of an order payload.
type Address struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	Address3    string `json:"address3"`
	Postcode    string `json:"postcode"`
	City        string `json:"city"`
	County      string `json:"county"`
	CountryName string `json:"country_name"`
	CountryCode string `json:"country_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// Comment is a single order comment.
type Comment struct {
	AuthorName string `json:"author_name"`
	Comments   string `json:"comments"`
	CreatedAt  string `json:"created_at"`
}

// CommentPayload is the shape accepted by the supplier's insertComment
// procedure.
type CommentPayload struct {
	ID       int       `json:"id"`
	Comments []Comment `json:"comments"`
}

// StorefrontOrder is the subset of the storefront's order JSON the push flow
// reads. Money fields arrive as strings on the wire; decimal keeps them
// exact until the payload is assembled.
type StorefrontOrder struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Currency        string             `json:"currency"`
	Note            string             `json:"note"`
	CreatedAt       string             `json:"created_at"`
	TotalWeight     float64            `json:"total_weight"`
	LineItems       []StorefrontLine   `json:"line_items"`
	ShippingLines   []ShippingLine     `json:"shipping_lines"`
	ShippingAddress *StorefrontAddress `json:"shipping_address"`
	BillingAddress  *StorefrontAddress `json:"billing_address"`
}

// StorefrontLine is one storefront order line.
type StorefrontLine struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	TaxLines []TaxLine       `json:"tax_lines"`
}

// TaxLine carries the fractional tax rate applied to a line.
type TaxLine struct {
	Rate decimal.Decimal `json:"rate"`
}

// ShippingLine is one storefront shipping option on an order.
type ShippingLine struct {
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

// StorefrontAddress is a storefront-side address block.
type StorefrontAddress struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	Zip         string `json:"zip"`
	City        string `json:"city"`
	Province    string `json:"province"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Phone       string `json:"phone"`
}
