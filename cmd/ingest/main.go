package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vanshika/finsight/backend/internal/bootstrap"
	"github.com/vanshika/finsight/backend/internal/config"
	"github.com/vanshika/finsight/backend/internal/generator"
	"github.com/vanshika/finsight/backend/internal/logging"
	"github.com/vanshika/finsight/backend/internal/service"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		file    string
		workers int
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Bulk load profiles from a JSON or YAML file into the configured store",
		Args:  cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return runIngest(ctx, file, workers, dryRun)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "profile file (.json, .yaml or .yml)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().IntVar(&workers, "workers", 4, "number of concurrent workers for ingestion")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing anything")

	return cmd
}

func runIngest(ctx context.Context, file string, workers int, dryRun bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.Logging).With("component", "ingest")

	profiles, err := generator.ReadProfiles(file)
	if err != nil {
		return err
	}

	if dryRun {
		for _, in := range profiles {
			if _, err := service.BuildProfile(in.ProfileInput); err != nil {
				return fmt.Errorf("profile %s: %w", in.UserID, err)
			}
		}
		logger.Info("dry run complete", "profiles", len(profiles), "path", file)
		return nil
	}

	backend, err := bootstrap.OpenBackend(ctx, logger, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			logger.Warn("closing store failed", "error", err)
		}
	}()

	ingestor := service.NewBulkIngestor(service.NewProfileService(backend), workers)

	start := time.Now()
	logger.Info("ingesting profiles", "count", len(profiles), "workers", workers, "store", cfg.StoreMode())
	if err := ingestor.IngestProfiles(ctx, profiles); err != nil {
		logger.Error("profile ingestion failed", "error", err)
		return err
	}
	logger.Info("ingestion complete", "duration", time.Since(start).String(), "profiles", len(profiles))
	return nil
}
