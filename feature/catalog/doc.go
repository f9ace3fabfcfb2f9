// Package catalog implements the product side of the sync: fetching the
// supplier catalog, mapping it to canonical records, and handing batches to
// the reconciliation engine.
//
// The mapping layer is pure. Anything that needs a remote call (variant
// lookup, location resolution, inventory writes) lives in the reconcile
// subpackage.
package catalog
