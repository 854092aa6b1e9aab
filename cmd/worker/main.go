package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/p2p-kyc/verify-sub000/internal/clients/mail"
	redisclient "github.com/p2p-kyc/verify-sub000/internal/clients/redis"
	"github.com/p2p-kyc/verify-sub000/internal/config"
	"github.com/p2p-kyc/verify-sub000/internal/email"
	"github.com/p2p-kyc/verify-sub000/internal/jobs"
	"github.com/p2p-kyc/verify-sub000/internal/jobs/workers"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
	paymentsprocessor "github.com/p2p-kyc/verify-sub000/internal/payments/processor"
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	redisAddr := cfg.Redis.Addr()

	// Initialize store
	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	// Initialize email service
	mailClient, err := mail.NewResendClient(cfg.Mail.ResendAPIKey, logger)
	if err != nil {
		log.Fatalf("Failed to initialize mail client: %v", err)
	}
	emailService := email.New(mailClient, cfg.Mail.DefaultSender, logger)

	// Redis-backed tally cache shared with the API process semantics
	var redisClient *redisclient.Client
	if cfg.Redis.Enabled {
		redisClient, err = redisclient.NewClient(cfg.Redis, logger)
		if err != nil {
			log.Fatalf("Failed to initialize Redis client: %v", err)
		}
		defer redisClient.Close()
	}
	tallyCache := paymentsprocessor.NewTallyCache(&dataStore, redisClient, logger)

	// Initialize workers
	notificationWorker := workers.NewNotificationWorker(&dataStore, emailService, cfg.Server.WebAppURI, logger)
	tallyWorker := workers.NewTallyWorker(tallyCache, &dataStore, logger)

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr, Password: cfg.Redis.Password, DB: cfg.Redis.DB},
		asynq.Config{
			Concurrency: 20, // Total number of concurrent workers
			Queues: map[string]int{
				jobs.QueueHigh:   10, // High priority queue gets 10 workers
				jobs.QueueMedium: 5,  // Medium priority queue gets 5 workers
				jobs.QueueLow:    2,  // Low priority queue gets 2 workers
			},
			// Error handler
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed: %v", task.Type(), err), err)
			}),
			// Retry configuration
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
		},
	)

	// Create task handler (mux)
	mux := asynq.NewServeMux()

	// Register notification email handler
	mux.HandleFunc(jobs.TypeEmailNotification, notificationWorker.ProcessNotificationTask)

	// Register tally reconciliation handler
	mux.HandleFunc(jobs.TypeTallyReconcile, tallyWorker.ProcessTallyReconcileTask)

	// Setup periodic tally reconciliation
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddr, Password: cfg.Redis.Password, DB: cfg.Redis.DB},
		&asynq.SchedulerOpts{
			Logger: &asynqLogger{logger: logger},
		},
	)

	// Reconcile all campaigns with open charges every 10 minutes
	reconcileTask, err := jobs.NewTallyReconcileTask(jobs.TallyReconcileJobPayload{})
	if err != nil {
		log.Fatalf("Failed to build reconcile task: %v", err)
	}
	_, err = scheduler.Register("*/10 * * * *", reconcileTask, asynq.Queue(jobs.QueueMedium))
	if err != nil {
		logger.Error(ctx, "failed to register periodic tally reconciliation", err)
	}

	// Start the scheduler
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Shutdown()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", redisAddr))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	// Graceful shutdown
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
