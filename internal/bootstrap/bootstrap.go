package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/p2p-kyc/verify-sub000/internal/config"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/store"

	activityHandler "github.com/p2p-kyc/verify-sub000/internal/activity/handler"
	activityProcessor "github.com/p2p-kyc/verify-sub000/internal/activity/processor"
	authHandler "github.com/p2p-kyc/verify-sub000/internal/auth/handler"
	authProcessor "github.com/p2p-kyc/verify-sub000/internal/auth/processor"
	campaignHandler "github.com/p2p-kyc/verify-sub000/internal/campaign/handler"
	campaignProcessor "github.com/p2p-kyc/verify-sub000/internal/campaign/processor"
	kafkaClient "github.com/p2p-kyc/verify-sub000/internal/clients/kafka"
	redisClient "github.com/p2p-kyc/verify-sub000/internal/clients/redis"
	"github.com/p2p-kyc/verify-sub000/internal/events"
	"github.com/p2p-kyc/verify-sub000/internal/jobs"
	messagingHandler "github.com/p2p-kyc/verify-sub000/internal/messaging/handler"
	"github.com/p2p-kyc/verify-sub000/internal/messaging/hub"
	messagingProcessor "github.com/p2p-kyc/verify-sub000/internal/messaging/processor"
	paymentsHandler "github.com/p2p-kyc/verify-sub000/internal/payments/handler"
	paymentsProcessor "github.com/p2p-kyc/verify-sub000/internal/payments/processor"
	"github.com/p2p-kyc/verify-sub000/internal/ratelimit"
	refundsHandler "github.com/p2p-kyc/verify-sub000/internal/refunds/handler"
	refundsProcessor "github.com/p2p-kyc/verify-sub000/internal/refunds/processor"
	requestsHandler "github.com/p2p-kyc/verify-sub000/internal/requests/handler"
	requestsProcessor "github.com/p2p-kyc/verify-sub000/internal/requests/processor"
	verificationHandler "github.com/p2p-kyc/verify-sub000/internal/verification/handler"
	verificationProcessor "github.com/p2p-kyc/verify-sub000/internal/verification/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Middleware
	AuthMiddleware authHandler.Middleware
	RateLimiter    *ratelimit.Limiter

	// Handlers
	CampaignHandler     campaignHandler.Handler
	RequestsHandler     requestsHandler.Handler
	PaymentsHandler     paymentsHandler.Handler
	VerificationHandler verificationHandler.Handler
	RefundsHandler      refundsHandler.Handler
	MessagingHandler    messagingHandler.Handler
	ActivityHandler     activityHandler.Handler

	// Live thread fanout
	Hub *hub.Hub

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
	JobClient     *jobs.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize Kafka producer
	brokerList := strings.Split(cfg.Kafka.Brokers, ",")
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
	}, logger)

	// Initialize Redis client (nil when disabled; tally degrades to DB reads)
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Initialize job queue client
	deps.JobClient = jobs.NewClient(cfg.Redis.Addr(), logger)

	// Event dispatcher feeds the Kafka stream and the notification queue
	dispatcher := events.NewDispatcher(deps.KafkaProducer, deps.JobClient, logger)

	// Tally cache shared by the campaign view and the charge guards
	tallyCache := paymentsProcessor.NewTallyCache(&deps.Store, deps.RedisClient, logger)

	// WebSocket fanout hub
	deps.Hub = hub.New(logger)

	// Per-user write throttle, 60 writes a minute
	deps.RateLimiter = ratelimit.NewLimiter(deps.RedisClient, 60, time.Minute, logger)

	// Auth
	auth := authProcessor.New(&deps.Store, cfg.Auth.JWTSecret, logger)
	deps.AuthMiddleware = authHandler.New(auth, logger)

	// Campaigns
	campaigns := campaignProcessor.New(&deps.Store, tallyCache, dispatcher, deps.Hub, logger)
	deps.CampaignHandler = campaignHandler.New(campaigns, logger)

	// Join requests
	requests := requestsProcessor.New(&deps.Store, dispatcher, logger)
	deps.RequestsHandler = requestsHandler.New(requests, logger)

	// Charges
	payments := paymentsProcessor.New(&deps.Store, tallyCache, dispatcher, deps.Hub, logger)
	deps.PaymentsHandler = paymentsHandler.New(payments, logger)

	// Verifications
	verifications := verificationProcessor.New(&deps.Store, logger)
	deps.VerificationHandler = verificationHandler.New(verifications, logger)

	// Refunds
	refunds := refundsProcessor.New(&deps.Store, dispatcher, deps.Hub, logger)
	deps.RefundsHandler = refundsHandler.New(refunds, logger)

	// Message threads
	messages := messagingProcessor.New(&deps.Store, dispatcher, deps.Hub, logger)
	deps.MessagingHandler = messagingHandler.New(messages, deps.Hub, logger)

	// Activity feed
	activity := activityProcessor.New(&deps.Store, logger)
	deps.ActivityHandler = activityHandler.New(activity, logger)

	logger.Info(ctx, "Dependencies initialized")
	return deps, nil
}

// Cleanup releases held connections
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
}
