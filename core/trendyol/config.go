package trendyol

// Listing endpoint families. The shipment-packages listing returns the same
// order/customer/line shape as the orders listing, so the sync engine does not
// care which one is configured.
const (
	ListingOrders           = "orders"
	ListingShipmentPackages = "shipment-packages"
)

// Auth schemes. Older endpoint generations take HTTP Basic credentials, newer
// ones take the key pair as separate headers.
const (
	AuthBasic   = "basic"
	AuthHeaders = "headers"
)

// Config holds configuration for the Trendyol seller API acting as the source feed.
type Config struct {
	// SellerID is the supplier id the credentials belong to.
	SellerID string `mapstructure:"seller_id" default:""`
	// APIKey is the seller API key.
	APIKey string `mapstructure:"api_key" default:""`
	// APISecret is the seller API secret.
	APISecret string `mapstructure:"api_secret" default:""`
	// Endpoint is the API root. Overridable for tests.
	Endpoint string `mapstructure:"endpoint" default:"https://api.trendyol.com/sapigw"`
	// Listing selects the listing endpoint family (orders or shipment-packages).
	Listing string `mapstructure:"listing" default:"orders"`
	// AuthScheme selects how credentials are sent (basic or headers).
	AuthScheme string `mapstructure:"auth_scheme" default:"basic"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}

// Validate reports whether the required credentials are present.
func (c Config) Validate() error {
	if c.SellerID == "" {
		return ErrMissingSellerID
	}
	if c.APIKey == "" || c.APISecret == "" {
		return ErrMissingCredentials
	}
	return nil
}
