// Command server runs the policydesk API and its background workers.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"policydesk/internal/config"
	"policydesk/internal/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "policydesk",
	Short:         "Insurance quotes, applications and claims",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional config file (yaml, json or toml)")
	rootCmd.AddCommand(serveCmd, migrateCmd, quoteCmd, tokenCmd)
}

// setup loads configuration and builds the logger every command shares.
func setup(cmd *cobra.Command) (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return cfg, nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
