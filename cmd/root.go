package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kleo12345/lead-scoring-system/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "leadscore",
	Short: "Lead scoring pipeline for local fitness businesses",
	Long:  "Ingests spreadsheets of gym leads, enriches them with scraped web signals, and ranks them by weighted priority score for outreach.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
