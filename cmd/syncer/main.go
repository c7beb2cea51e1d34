package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"call_syncer/internal/config"
	"call_syncer/internal/scheduler"
	"call_syncer/internal/service"
	"call_syncer/internal/sheet"
	"call_syncer/internal/source/vapi"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "syncer [destination]",
		Short: "Sync Vapi call logs into Google Sheets",
		Long: `Sync call logs from the Vapi API into Google Sheets.

With no argument every configured destination is synced in order. Passing a
destination name (e.g. outbound, inbound) syncs just that sheet.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arg-count violations above still print usage; runtime
			// failures below report the error alone.
			cmd.SilenceUsage = true

			destination := ""
			if len(args) == 1 {
				destination = args[0]
			}
			return run(configPath, destination)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	return cmd
}

func run(configPath, destination string) error {
	logger := setupLogger("info")

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return err
	}

	logger = setupLogger(cfg.LogLevel)

	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		logger.Error("failed to load timezone", "timezone", cfg.Report.Timezone, "error", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	source := vapi.New(vapi.Config{
		BaseURL:  cfg.API.BaseURL,
		Token:    cfg.API.Token,
		PageSize: cfg.API.PageSize,
		MaxPages: cfg.API.MaxPages,
		Timeout:  cfg.API.Timeout(),
	}, logger)

	writer, err := sheet.NewWriter(ctx, sheet.Config{
		SpreadsheetID:   cfg.Sheets.SpreadsheetID,
		CredentialsFile: cfg.Sheets.CredentialsFile,
	}, logger)
	if err != nil {
		logger.Error("failed to create sheet writer", "error", err)
		return err
	}

	syncService := service.NewSyncService(source, writer, cfg.Destinations, loc, logger)

	logger.Info("starting call syncer",
		"destinations", len(cfg.Destinations),
		"timezone", cfg.Report.Timezone,
		"interval", cfg.Sync.Interval(),
	)

	if cfg.Sync.IntervalSec > 0 {
		sched := scheduler.NewScheduler(syncService, destination, cfg.Sync.Interval(), cfg.Sync.Timeout(), logger)
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler error", "error", err)
			return err
		}
		return nil
	}

	if _, err := syncService.Sync(ctx, destination); err != nil {
		logger.Error("sync failed", "error", err)
		return err
	}

	return nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
