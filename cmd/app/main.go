package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"coffeeshop/cmd"
	"coffeeshop/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs, os.Stderr)

	var progressOut io.Writer
	if configs.RunOnce {
		progressOut = os.Stdout
	}

	app, err := cmd.NewCompositionRoot(configs, logger, progressOut)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	printReport := func(report commands.BatchReport) {
		if err := cmd.WriteBatchReport(os.Stdout, report); err != nil {
			logger.Error("Failed to print report", "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configs.RunOnce {
		runOnce(ctx, app, printReport)
		return
	}
	runScheduled(ctx, app, logger, printReport)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func newLogger(config cmd.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: config.LogLevel}
	if config.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func runOnce(ctx context.Context, app *cmd.CompositionRoot, printReport func(commands.BatchReport)) {
	if err := cmd.WriteMenu(os.Stdout, app.Menu()); err != nil {
		log.Fatalf("Error printing menu: %v", err)
	}

	rush, err := app.CreateRushJob(printReport)
	if err != nil {
		log.Fatalf("Error creating rush: %v", err)
	}

	if _, err = rush.RunOnce(ctx); err != nil {
		log.Fatalf("Rush failed: %v", err)
	}
}

func runScheduled(
	ctx context.Context,
	app *cmd.CompositionRoot,
	logger *slog.Logger,
	printReport func(commands.BatchReport),
) {
	jobManager, err := app.CreateJobManager(printReport)
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}

	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	<-ctx.Done()
	logger.InfoContext(context.Background(), "Shutting down")
	jobManager.StopAll()
}
