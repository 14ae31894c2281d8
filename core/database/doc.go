// Package database handles the optional run-history database connection.
//
// It provides a wrapper around GORM to properly configure MySQL connections
// based on the application's configuration. The database only stores sync run
// records; every part of the order sync itself works without it.
//
// # Connect
//
// The Connect function establishes a connection with connection-pool limits and
// DSN-level timeouts so a slow database cannot stall startup or a sync pass.
//
// # Usage
//
//	if cfg.Database.Enabled() {
//	    db, err := database.Connect(cfg.Database)
//	    ...
//	}
package database
