package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pg "policydesk/internal/adapters/postgres"
	"policydesk/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		if cfg.Store != config.StorePostgres {
			return fmt.Errorf("migrate needs the postgres store, configured %q", cfg.Store)
		}
		db, err := pg.Connect(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer db.Close()
		n, err := db.Migrate(cmd.Context())
		if err != nil {
			return err
		}
		log.WithField("applied", n).Info("migrations complete")
		return nil
	},
}
