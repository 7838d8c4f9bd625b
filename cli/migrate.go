package cli

import (
	"fmt"
	"ocai-hub/config/setup"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()

			db, err := setup.InitDatabase(cfg.DBPath, commandLogger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer db.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "database migrated: %s\n", cfg.DBPath)
			return nil
		},
	}
}
