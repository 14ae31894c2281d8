// Package trendyol provides the source feed client for the sync engine.
//
// It wraps the paginated order listing of the Trendyol seller API, authenticated
// with static credentials. Both endpoint generations are supported: the classic
// orders listing with HTTP Basic auth and the shipment-packages listing with the
// key pair sent as separate headers. Both return the same order/customer/line
// shape, so the sync engine is agnostic to the configured family.
//
// # Client Interface
//
// The Client interface abstracts the feed, making it easy to mock interactions
// for unit testing (as seen in core/trendyol/mocks).
//
// # Errors
//
// Non-2xx responses surface as *SourceError. The sync engine treats a SourceError
// as abort-this-pass: the watermark stays untouched and the process keeps serving.
//
// # Usage
//
//	client, err := trendyol.NewClient(cfg)
//	page, err := client.ListOrders(ctx, 0, 50, sinceMillis)
package trendyol
