// Package airtable provides the destination store client for the sync engine.
//
// It wraps the Airtable REST API as a record-oriented store organized into named
// tables with linked-record fields. The surface is intentionally small: the sync
// engine only ever filters records by equality predicates and inserts single rows.
//
// # Client Interface
//
// The Client interface abstracts the store, making it easy to mock interactions
// for unit testing (as seen in core/airtable/mocks).
//
// # Operations
//
//   - Search: Lists records matching a filterByFormula expression.
//   - Create: Inserts a single record and returns it with its assigned id.
//
// # Filter formulas
//
// Formulas are built with Eq and And, which quote and escape literals. Raw string
// interpolation of marketplace data into formulas is not allowed anywhere in the
// codebase.
//
// # Usage
//
//	client, err := airtable.NewClient(cfg)
//	records, err := client.Search(ctx, "Orders", airtable.Eq("Order ID", "100"))
package airtable
