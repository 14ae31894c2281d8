package cmd

import (
	"fmt"
	"os"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "trendyol-airtable-integration",
	Short: "Trendyol to Airtable order sync service",
	Long: `Trendyol-Airtable integration mirrors marketplace orders into an Airtable base.
It incrementally syncs orders, customers, and inventory links on a durable watermark.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// CLI errors go through the console logger so they read like the
		// rest of the command output.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
