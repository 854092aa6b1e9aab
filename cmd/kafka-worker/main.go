package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/p2p-kyc/verify-sub000/internal/config"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/store"
	"github.com/p2p-kyc/verify-sub000/internal/workers"
	"github.com/p2p-kyc/verify-sub000/internal/workers/activity"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting activity feed consumer...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	brokers := strings.Split(cfg.Kafka.Brokers, ",")

	// Initialize store
	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	// Project marketplace events into the activity feed
	processor := activity.NewEventProcessor(&dataStore, logger)

	consumer := workers.NewConsumer(
		workers.DefaultConsumerConfig(brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topic),
		processor,
		logger,
	)

	logger.Info(ctx, fmt.Sprintf(`Activity consumer configuration:
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		brokers, cfg.Kafka.Topic, cfg.Kafka.ConsumerGroup))

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := consumer.Start(ctx); err != nil && err != context.Canceled {
			logger.Error(ctx, "Activity consumer error", err)
			cancel()
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	logger.Info(ctx, "Received shutdown signal, stopping consumer...")
	cancel()

	consumer.Stop()
	logger.Info(ctx, "Activity consumer stopped")
}
