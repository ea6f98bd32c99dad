package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"razzie/internal/config"
	"razzie/internal/ingest"
	"razzie/internal/logging"
	"razzie/internal/movie"
	"razzie/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			lockPath := filepath.Join(cfg.Database.Dir, "razzie.lock")
			lock := flock.New(lockPath)
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !locked {
				return errors.New("another razzie server is already running")
			}
			defer func() { _ = lock.Unlock() }()

			store, err := movie.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := loadOnStart(runCtx, cfg, store, logger); err != nil {
				return err
			}

			srv, err := server.New(cfg, store, logger)
			if err != nil {
				return err
			}
			if err := srv.Start(runCtx); err != nil {
				return err
			}
			defer srv.Stop()

			<-runCtx.Done()
			logger.Info("shutting down")
			return nil
		},
	}
}

// loadOnStart seeds an empty database from the configured awards CSV.
// A populated database is left untouched.
func loadOnStart(ctx context.Context, cfg *config.Config, store *movie.Store, logger *slog.Logger) error {
	if !cfg.Ingest.LoadOnStart || strings.TrimSpace(cfg.Ingest.CSVPath) == "" {
		return nil
	}
	count, err := store.Count(ctx, movie.Filter{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	loader := ingest.NewLoader(store, logger, cfg.DelimiterRune())
	summary, err := loader.LoadFile(ctx, cfg.Ingest.CSVPath)
	if err != nil {
		return fmt.Errorf("seed from %s: %w", cfg.Ingest.CSVPath, err)
	}
	logger.Info("seeded database from csv",
		logging.String("path", cfg.Ingest.CSVPath),
		logging.Int("loaded", summary.Loaded),
		logging.Int("skipped", summary.Skipped))
	return nil
}
