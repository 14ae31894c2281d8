package cmd

import (
	"context"
	"fmt"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/airtable"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/config"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/database"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/state"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/storage"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/trendyol"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// syncDeps bundles the external dependencies shared by the server and the
// one-shot sync command.
type syncDeps struct {
	store airtable.Client
	feed  trendyol.Client
	state state.Store
	db    *gorm.DB
}

// buildSyncDeps creates the Airtable and Trendyol clients, the watermark
// store for the configured driver, and the optional run-history database.
func buildSyncDeps(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*syncDeps, error) {
	store, err := airtable.NewClient(cfg.Airtable)
	if err != nil {
		return nil, fmt.Errorf("create airtable client: %w", err)
	}

	feed, err := trendyol.NewClient(cfg.Trendyol)
	if err != nil {
		return nil, fmt.Errorf("create trendyol client: %w", err)
	}

	var st state.Store
	switch cfg.State.Driver {
	case state.DriverS3:
		objects, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("create storage client: %w", err)
		}
		if err := state.EnsureBucket(ctx, objects, cfg.Storage.Bucket); err != nil {
			return nil, err
		}
		st = state.NewObjectStore(objects, cfg.Storage.Bucket, cfg.State.Object)
	default:
		st = state.NewFileStore(cfg.State.Path)
	}

	// The run history is best-effort: a missing database only disables the
	// /sync/runs surface, never the sync itself.
	var db *gorm.DB
	if cfg.Database.Enabled() {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Warn("Run-history database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to run-history database")
		}
	}

	return &syncDeps{store: store, feed: feed, state: st, db: db}, nil
}
