// Package orders implements the incremental order-sync feature.
//
// One reconciliation pass fetches pages of marketplace orders newer than the
// persisted watermark and mirrors them into the destination store: for every
// order it resolves or creates the customer record, resolves inventory links
// per line item, skips orders that already have a destination row, creates the
// order row, and finally advances the watermark.
//
// Passes are idempotent by construction (search-before-create on the external
// order id), so repeated or overlapping triggers are safe. A failure on one
// order never aborts the rest of the pass; a feed failure aborts the pass and
// leaves the watermark untouched.
//
// # Triggers
//
// The feature exposes HTTP triggers (fire-and-forget and blocking), a webhook
// endpoint for single-order pushes, and an optional gocron interval scheduler.
// At most one pass runs at a time; a trigger that finds the slot busy is a
// logged no-op.
package orders
