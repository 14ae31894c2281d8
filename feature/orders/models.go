package orders

import "errors"

// Destination field names. Table names come from configuration, field names
// are fixed by the base layout.
const (
	FieldOrderID        = "Order ID"
	FieldOrderNumber    = "Order Number"
	FieldCustomerLink   = "Customer"
	FieldInventoryLink  = "Inventory"
	FieldOrderDate      = "Order Date"
	FieldPaymentStatus  = "Payment Status"
	FieldShippingStatus = "Shipping Status"
	FieldSalesChannel   = "Sales Channel"
	FieldProducts       = "Products"
	FieldQuantities     = "Quantities"
	FieldPrices         = "Prices"

	FieldCustomerID = "Customer ID"
	FieldName       = "Name"
	FieldPhone      = "Phone"
	FieldAddress    = "Address"
	FieldChannel    = "Acquisition Channel"

	FieldSKU = "SKU"
)

// SalesChannel is the constant channel value stamped on every synced row.
const SalesChannel = "Trendyol"

var (
	// ErrSyncInProgress signals that another pass currently holds the
	// single run slot. Triggers treat it as a no-op, not a failure.
	ErrSyncInProgress = errors.New("orders: sync already in progress")

	// ErrInvalidOrder signals a source order missing required fields
	// (external id or timestamp). The offending order is skipped.
	ErrInvalidOrder = errors.New("orders: order is missing required fields")

	// ErrRunHistoryDisabled signals that no run-history database is attached.
	ErrRunHistoryDisabled = errors.New("orders: run history database not configured")
)

// Report summarizes one reconciliation pass.
type Report struct {
	// Processed counts all source orders examined during the pass.
	Processed int `json:"processed"`
	// Created counts destination order rows created.
	Created int `json:"created"`
	// Skipped counts orders that already had a destination row.
	Skipped int `json:"skipped"`
	// Failed counts orders dropped by store or customer-resolution failures.
	Failed int `json:"failed"`
	// Invalid counts orders dropped by validation.
	Invalid int `json:"invalid"`
	// CustomersCreated counts customer records created during the pass.
	CustomersCreated int `json:"customers_created"`
	// MissingSKUs counts order lines that proceeded without an inventory link.
	MissingSKUs int `json:"missing_skus"`
	// Watermark is the watermark after the pass, in epoch milliseconds.
	Watermark int64 `json:"watermark_ms"`
	// Duration is the wall-clock duration of the pass.
	Duration string `json:"duration"`
}
