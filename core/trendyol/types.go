package trendyol

import "github.com/shopspring/decimal"

// Order is a single order (or fulfillment unit, when the shipment-packages
// listing is configured) as returned by the seller API. Orders are immutable
// as received; the marketplace remains the source of truth.
type Order struct {
	// ID is the external id used for destination-side deduplication.
	ID int64 `json:"id"`
	// OrderNumber is the human-facing order number.
	OrderNumber string `json:"orderNumber"`
	// CustomerID is the external customer id.
	CustomerID int64 `json:"customerId"`
	// CustomerFirstName and CustomerLastName identify the buyer.
	CustomerFirstName string `json:"customerFirstName"`
	CustomerLastName  string `json:"customerLastName"`
	// OrderDate is the order timestamp in epoch milliseconds.
	OrderDate int64 `json:"orderDate"`
	// Status is the marketplace status string (Created, Shipped, Delivered, ...).
	Status string `json:"status"`
	// Lines are the order line items, in feed order.
	Lines []Line `json:"lines"`
	// ShipmentAddress is the delivery address the customer record is derived from.
	ShipmentAddress Address `json:"shipmentAddress"`
}

// Line is a single order line item.
type Line struct {
	// MerchantSKU is the seller-side SKU. May be empty or a sentinel value.
	MerchantSKU string `json:"merchantSku"`
	// ProductName is the marketplace product title.
	ProductName string `json:"productName"`
	// Quantity is the ordered unit count.
	Quantity int `json:"quantity"`
	// Price is the unit price. The feed serializes it as a JSON number,
	// decimal.Decimal keeps it exact.
	Price decimal.Decimal `json:"price"`
}

// Address is the shipment address attached to an order.
type Address struct {
	FullName string `json:"fullName"`
	Address1 string `json:"address1"`
	City     string `json:"city"`
	District string `json:"district"`
	Phone    string `json:"phone"`
}

// OrderPage is one page of the paginated orders listing.
type OrderPage struct {
	Content       []Order `json:"content"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
	TotalPages    int     `json:"totalPages"`
	TotalElements int64   `json:"totalElements"`
}

// HasMore reports whether pages remain after this one.
func (p *OrderPage) HasMore() bool {
	return p.Page+1 < p.TotalPages
}
