// Package cli wires the ocai-hub commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"ocai-hub/app"
	"ocai-hub/config"
	"ocai-hub/config/setup"
	"ocai-hub/database"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

// NewRootCommand builds the command tree. Running it without a subcommand serves
// HTTP.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ocai-hub",
		Short:         "Organizational culture assessment server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (default: DB_PATH)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newExportCommand())
	root.AddCommand(newAggregateCommand())
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg := config.Load()
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

// commandLogger keeps stdout clean for command output
func commandLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// openApp migrates the database and builds the application for one-shot commands
func openApp(ctx context.Context, cmd *cobra.Command) (*app.App, *database.DB, error) {
	cfg := loadConfig()
	logger := commandLogger(cmd.ErrOrStderr())

	db, err := setup.InitDatabase(cfg.DBPath, logger)
	if err != nil {
		return nil, nil, err
	}

	application, err := setup.InitApp(ctx, db, cfg, logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return application, db, nil
}
