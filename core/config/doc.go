// Package config provides configuration management for the sync service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file, with defaults declared as struct tags on each partial
// config.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP port and the shared cron trigger secret
//   - Log: Logging level and format
//   - Airtable: Destination store credentials and table names
//   - Trendyol: Source feed credentials and endpoint family
//   - State: Watermark store driver (file or s3)
//   - Storage: S3/MinIO credentials for the s3 watermark driver
//   - Database: Optional MySQL run-history connection
//   - Sync: Page size, page cap, lookback window, schedule interval
//
// Environment variables map onto nested keys with underscores, e.g.
// AIRTABLE_TOKEN -> airtable.token, SYNC_INTERVAL_MINUTES -> sync.interval_minutes.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
