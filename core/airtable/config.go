package airtable

// Config holds configuration for the Airtable base acting as the destination store.
type Config struct {
	// Token is the personal access token used as a Bearer credential.
	Token string `mapstructure:"token" default:""`
	// BaseID is the identifier of the Airtable base.
	BaseID string `mapstructure:"base_id" default:""`
	// Endpoint is the API root. Overridable for tests.
	Endpoint string `mapstructure:"endpoint" default:"https://api.airtable.com/v0"`
	// OrdersTable is the table receiving synced order rows.
	OrdersTable string `mapstructure:"orders_table" default:"Orders"`
	// CustomersTable is the table holding customer records.
	CustomersTable string `mapstructure:"customers_table" default:"Customers"`
	// InventoryTable is the read-only table holding inventory records keyed by SKU.
	InventoryTable string `mapstructure:"inventory_table" default:"French Inventories"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}

// Validate reports whether the required credentials are present.
func (c Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.BaseID == "" {
		return ErrMissingBaseID
	}
	return nil
}
