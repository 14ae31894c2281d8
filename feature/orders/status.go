package orders

import "strings"

// Shipping status values in the destination store.
const (
	ShippingNew     = "New"
	ShippingShipped = "Shipped"
)

// Payment status values in the destination store.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
	PaymentRefund  = "Refund"
)

// MapStatus translates a marketplace status string into the destination
// shipping and payment statuses. The mapping is total: unknown or absent
// statuses fall back to New/Pending. Matching is case-insensitive.
//
// Note that shipped/delivered only prove fulfillment, not settlement, so they
// map the payment status to Pending; only invoiced implies Paid.
func MapStatus(status string) (shipping, payment string) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "invoiced":
		return ShippingShipped, PaymentPaid
	case "shipped", "delivered":
		return ShippingShipped, PaymentPending
	case "paid":
		return ShippingNew, PaymentPaid
	case "cancelled":
		return ShippingNew, PaymentFailed
	case "refunded":
		return ShippingNew, PaymentRefund
	default:
		return ShippingNew, PaymentPending
	}
}
