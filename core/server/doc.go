// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures for server settings, such as the listen
// port and the shared cron trigger secret.
//
// # Configuration
//
// The Config struct defines the HTTP port and the optional X-Cron-Secret value.
// An empty secret means the trigger endpoints accept unauthenticated requests,
// which is the intended degraded mode for local development.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the auth middleware to validate trigger requests.
package server
