package config_test

import (
	"testing"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/airtable"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/config"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/trendyol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Orders", cfg.Airtable.OrdersTable)
	assert.Equal(t, "Customers", cfg.Airtable.CustomersTable)
	assert.Equal(t, "French Inventories", cfg.Airtable.InventoryTable)
	assert.Equal(t, "https://api.trendyol.com/sapigw", cfg.Trendyol.Endpoint)
	assert.Equal(t, trendyol.ListingOrders, cfg.Trendyol.Listing)
	assert.Equal(t, "file", cfg.State.Driver)
	assert.Equal(t, 50, cfg.Sync.PageSize)
	assert.Equal(t, 10, cfg.Sync.MaxPages)
	assert.Equal(t, 24, cfg.Sync.LookbackHours)
	assert.Equal(t, 0, cfg.Sync.IntervalMinutes)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("AIRTABLE_TOKEN", "patTEST")
	t.Setenv("AIRTABLE_BASE_ID", "appTEST")
	t.Setenv("TRENDYOL_SELLER_ID", "12345")
	t.Setenv("SERVER_CRON_SECRET", "hunter2")
	t.Setenv("SYNC_INTERVAL_MINUTES", "15")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "patTEST", cfg.Airtable.Token)
	assert.Equal(t, "appTEST", cfg.Airtable.BaseID)
	assert.Equal(t, "12345", cfg.Trendyol.SellerID)
	assert.Equal(t, "hunter2", cfg.Server.CronSecret)
	assert.Equal(t, 15, cfg.Sync.IntervalMinutes)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &config.Config{}
	assert.ErrorIs(t, cfg.Validate(), airtable.ErrMissingToken)

	cfg.Airtable.Token = "patTEST"
	cfg.Airtable.BaseID = "appTEST"
	assert.ErrorIs(t, cfg.Validate(), trendyol.ErrMissingSellerID)

	cfg.Trendyol.SellerID = "12345"
	cfg.Trendyol.APIKey = "key"
	cfg.Trendyol.APISecret = "secret"
	assert.NoError(t, cfg.Validate())
}
