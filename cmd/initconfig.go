package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Kleo12345/lead-scoring-system/internal/scoring"
)

var (
	initConfigPath  string
	initConfigForce bool
)

var initConfigCmd = &cobra.Command{
	Use:   "initconfig",
	Short: "Write the default scoring weights file",
	Long:  "Materializes the built-in scoring weights, bonuses, and tier thresholds as a YAML file you can tune per campaign.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := initConfigPath
		if path == "" {
			path = cfg.Scoring.ConfigPath
		}

		if _, err := os.Stat(path); err == nil && !initConfigForce {
			return eris.Errorf("initconfig: %s already exists (use --force to overwrite)", path)
		}

		data, err := yaml.Marshal(scoring.DefaultConfig())
		if err != nil {
			return eris.Wrap(err, "initconfig: marshal defaults")
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return eris.Wrapf(err, "initconfig: write %s", path)
		}

		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	initConfigCmd.Flags().StringVar(&initConfigPath, "path", "", "destination file (default from config)")
	initConfigCmd.Flags().BoolVar(&initConfigForce, "force", false, "overwrite an existing file")
	rootCmd.AddCommand(initConfigCmd)
}
