package jobs

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/p2p-kyc/verify-sub000/internal/observability"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisAddr string, logger *observability.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueNotificationJob enqueues an email notification job
func (c *Client) EnqueueNotificationJob(ctx context.Context, payload NotificationJobPayload) error {
	task, err := NewNotificationTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create notification task", err)
		return fmt.Errorf("failed to create notification task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue notification task", err)
		return fmt.Errorf("failed to enqueue notification task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued notification task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}

// EnqueueTallyReconcileJob enqueues a charged-tally cache refresh job
func (c *Client) EnqueueTallyReconcileJob(ctx context.Context, payload TallyReconcileJobPayload) error {
	task, err := NewTallyReconcileTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create tally reconcile task", err)
		return fmt.Errorf("failed to create tally reconcile task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue tally reconcile task", err)
		return fmt.Errorf("failed to enqueue tally reconcile task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued tally reconcile task: %s", info.ID))
	return nil
}
