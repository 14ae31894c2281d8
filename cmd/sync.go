package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/config"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/logger"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/feature/orders"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncTimeoutMinutes int

// syncCmd runs a single reconciliation pass and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync pass and exit",
	Long: `Runs a single reconciliation pass against the marketplace feed and exits.

Useful for cron-driven deployments and for backfilling after configuration
changes without keeping the server running.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().IntVar(&syncTimeoutMinutes, "timeout", 10, "Abort the pass after this many minutes")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(syncTimeoutMinutes)*time.Minute)
	defer cancel()

	deps, err := buildSyncDeps(ctx, cfg, l)
	if err != nil {
		return err
	}

	svc := orders.NewService(deps.store, deps.feed, deps.state,
		orders.NewRunRecorder(deps.db, l), cfg.Airtable, cfg.Sync, l)

	if deps.db != nil {
		if err := svc.Runs().Migrate(); err != nil {
			return fmt.Errorf("failed to migrate run history: %w", err)
		}
	}

	report, err := svc.TryRunPass(ctx)
	if err != nil {
		return fmt.Errorf("sync pass failed: %w", err)
	}

	l.Info("Sync pass completed",
		zap.Int("processed", report.Processed),
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
		zap.Int("invalid", report.Invalid),
		zap.Int("customers_created", report.CustomersCreated),
		zap.Int("missing_skus", report.MissingSKUs),
		zap.Int64("watermark_ms", report.Watermark),
		zap.String("duration", report.Duration),
	)
	return nil
}
