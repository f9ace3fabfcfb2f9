// Package orders implements the order side of the sync: exporting supplier
// orders and refunds, pushing storefront orders to the supplier with an
// already-exists update fallback, and the order comment helpers.
package orders
