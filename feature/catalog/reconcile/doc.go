// Package reconcile implements the per-record reconciliation engine for
// products and inventory.
//
// Each product record runs a small state machine with terminal states
// created, updated, inventory, missing, and failed. The variant matching a
// record's SKU is always re-queried from the storefront, never cached across
// runs; that makes every run self-correcting after partial failures.
//
// Inventory writes try the REST absolute-set endpoint first and fall back to
// the on-hand quantities mutation when the endpoint answers 404. Structured
// user errors from the mutation become record-level failures.
package reconcile
