package main

import (
	"context"
	"fmt"
	"time"

	"evseed/internal/config"
	"evseed/internal/logger"

	"cloud.google.com/go/pubsub"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Creates the seed run-report topic and a pull subscription on the local
// Pub/Sub emulator so SEED_REPORT_TOPIC can be exercised without GCP.
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, relying on system environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		l := logger.New("", "")
		l.Fatal().Msgf("Failed to load config: %v", err)
	}
	logger := logger.New(cfg.Environment, cfg.LogLevel)
	logger.Info().Msg("Starting Pub/Sub setup for the local environment.")

	if cfg.PubSubEmulatorHost == "" {
		logger.Fatal().Msg("PUBSUB_EMULATOR_HOST must be set for local environment.")
	}
	if cfg.ReportTopic == "" {
		logger.Fatal().Msg("SEED_REPORT_TOPIC is not set in the environment.")
	}

	clientOptions := []option.ClientOption{
		option.WithEndpoint(cfg.PubSubEmulatorHost),
		option.WithoutAuthentication(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := pubsub.NewClient(ctx, cfg.GCPProjectID, clientOptions...)
	if err != nil {
		logger.Fatal().Msgf("Failed to create Pub/Sub client: %v", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error().Msgf("Failed to close pubsub client: %v", err)
		}
	}()

	topic := createTopicIfNotExists(ctx, client, logger, cfg.ReportTopic)
	createSubscriptionIfNotExists(ctx, client, logger, cfg.ReportTopic+"-sub", topic)
	listTopics(ctx, client, logger)

	logger.Info().Msg("Pub/Sub setup for local environment complete.")
}

func createTopicIfNotExists(ctx context.Context, client *pubsub.Client, logger zerolog.Logger, topicID string) *pubsub.Topic {
	topic := client.Topic(topicID)
	exists, err := topic.Exists(ctx)
	if err != nil {
		logger.Fatal().Msgf("Failed to check if topic %s exists: %v", topicID, err)
	}
	if exists {
		logger.Info().Msgf("Topic %s already exists.", topicID)
		return topic
	}

	logger.Info().Msgf("Creating topic: %s", topicID)
	topic, err = client.CreateTopic(ctx, topicID)
	if err != nil {
		logger.Fatal().Msgf("Failed to create topic '%s': %v", topicID, err)
	}
	return topic
}

func createSubscriptionIfNotExists(ctx context.Context, client *pubsub.Client, logger zerolog.Logger, subID string, topic *pubsub.Topic) {
	sub := client.Subscription(subID)
	exists, err := sub.Exists(ctx)
	if err != nil {
		logger.Fatal().Msgf("Failed to check if subscription %s exists: %v", subID, err)
	}
	if exists {
		logger.Info().Msgf("Subscription %s already exists.", subID)
		return
	}

	logger.Info().Msgf("Creating pull subscription %s on topic %s", subID, topic.ID())
	if _, err := client.CreateSubscription(ctx, subID, pubsub.SubscriptionConfig{
		Topic:       topic,
		AckDeadline: 60 * time.Second,
	}); err != nil {
		logger.Fatal().Msgf("Failed to create subscription '%s': %v", subID, err)
	}
}

func listTopics(ctx context.Context, client *pubsub.Client, logger zerolog.Logger) {
	topics := client.Topics(ctx)
	for {
		topic, err := topics.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Warn().Msgf("Failed to list topics: %v", err)
			return
		}
		logger.Info().Msgf("Emulator topic: %s", topic.ID())
	}
}
