package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evseed/internal/config"
	"evseed/internal/credentials"
	"evseed/internal/fixture"
	"evseed/internal/logger"
	"evseed/internal/pubsub"
	"evseed/internal/repository"
	"evseed/internal/seeder"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// Load environment variables early for local development
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, relying on system environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		l := logger.New("", "")
		l.Fatal().Msgf("Failed to load config: %v", err)
	}

	logger := logger.New(cfg.Environment, cfg.LogLevel)
	os.Exit(run(cfg, logger))
}

// run seeds the database and returns the process exit code.
func run(cfg *config.Config, logger zerolog.Logger) int {
	logger.Info().Str("project_id", cfg.GCPProjectID).Bool("dry_run", cfg.DryRun).Msg("Starting Firestore seeding.")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	fixtures, err := fixture.FromConfig(cfg.FixturesFile)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load fixtures")
		return exitCode(cfg, err)
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Error setting up Firestore collections")
		return exitCode(cfg, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Msgf("Failed to close document store: %v", err)
		}
	}()

	startedAt := time.Now()
	res, runErr := seeder.New(store, fixtures, logger).Run(ctx)
	if runErr != nil {
		logger.Error().Err(runErr).Int("documents_written", res.Total()).Msg("Error setting up Firestore collections")
	}

	if cfg.ReportTopic != "" {
		report := pubsub.NewReport(cfg.GCPProjectID, startedAt, time.Now(), res.Created, runErr)
		publishReport(cfg, logger, report)
	}

	return exitCode(cfg, runErr)
}

func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.DocumentStore, error) {
	if cfg.DryRun {
		logger.Warn().Msg("SEED_DRY_RUN is set, writing to an in-memory store.")
		return repository.NewMemoryStore(), nil
	}

	if cfg.UsesEmulator() {
		logger.Info().Str("emulator", cfg.FirestoreEmulatorHost).Msg("Using the Firestore emulator.")
	}

	opts, err := credentials.ClientOptions(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve credentials: %w", err)
	}
	return repository.NewFirestoreStore(ctx, cfg.GCPProjectID, opts...)
}

// publishReport sends the run report. Failures are logged only.
func publishReport(cfg *config.Config, logger zerolog.Logger, report pubsub.Report) {
	// The run context may already be cancelled or expired.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publisher, err := pubsub.NewPublisher(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create Pub/Sub publisher")
		return
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error().Msgf("Failed to close pubsub client: %v", err)
		}
	}()

	id, err := pubsub.PublishReport(ctx, publisher, cfg.ReportTopic, report)
	if err != nil {
		logger.Error().Err(err).Str("topic", cfg.ReportTopic).Msg("Failed to publish run report")
		return
	}
	logger.Info().Str("topic", cfg.ReportTopic).Str("message_id", id).Msg("Published run report")
}

// exitCode maps the run outcome to a process status. Failures exit 1 unless
// SEED_EXIT_ZERO_ON_FAILURE restores the legacy status 0.
func exitCode(cfg *config.Config, err error) int {
	if err == nil || cfg.ExitZeroOnFailure {
		return 0
	}
	return 1
}
