package cli

import (
	"context"
	"log/slog"
	"ocai-hub/config/setup"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and the survey lifecycle worker",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	logger := setup.NewLogger(cfg)
	slog.SetDefault(logger)

	db, err := setup.InitDatabase(cfg.DBPath, logger)
	if err != nil {
		return err
	}

	application, err := setup.InitApp(cmd.Context(), db, cfg, logger)
	if err != nil {
		db.Close()
		return err
	}
	defer setup.Shutdown(application, db, logger)

	application.Lifecycle.Start()

	fiberApp := setup.NewFiberApp(cfg, logger)
	setup.ApplyMiddleware(fiberApp, cfg, logger)
	setup.RegisterRoutes(fiberApp, application, cfg)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- fiberApp.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		logger.Error("server failed", "error", err)
		return err
	case <-quit:
	}

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
	return nil
}
