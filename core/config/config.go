package config

import (
	"reflect"
	"strings"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/airtable"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/database"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/logger"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/server"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/state"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/storage"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/trendyol"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Airtable holds configuration for the destination store.
	Airtable airtable.Config `mapstructure:"airtable"`
	// Trendyol holds configuration for the source feed.
	Trendyol trendyol.Config `mapstructure:"trendyol"`
	// State holds configuration for the watermark store.
	State state.Config `mapstructure:"state"`
	// Storage holds configuration for the object storage backing the s3
	// watermark driver.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the optional run-history database.
	Database database.Config `mapstructure:"database"`
	// Sync holds configuration for the reconciliation passes.
	Sync SyncConfig `mapstructure:"sync"`
}

// SyncConfig holds tuning knobs for the reconciliation engine.
type SyncConfig struct {
	// PageSize is the feed page size per request.
	PageSize int `mapstructure:"page_size" default:"50"`
	// MaxPages caps the pages fetched per pass, guarding against a feed
	// that paginates indefinitely.
	MaxPages int `mapstructure:"max_pages" default:"10"`
	// LookbackHours is the default lower bound when no watermark exists yet.
	LookbackHours int `mapstructure:"lookback_hours" default:"24"`
	// IntervalMinutes is the scheduled pass interval. Zero disables the
	// scheduler, leaving only the HTTP triggers.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"0"`
}

// Validate checks the values required to run at all. Optional sections
// (database, storage, cron secret) degrade gracefully instead.
func (c *Config) Validate() error {
	if err := c.Airtable.Validate(); err != nil {
		return err
	}
	return c.Trendyol.Validate()
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. AIRTABLE_TOKEN -> airtable.token)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
