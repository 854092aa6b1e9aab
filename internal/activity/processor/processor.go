package processor

import (
	"context"

	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

// ActivityStore defines the database operations required by ActivityProcessor
type ActivityStore interface {
	CreateActivityEvent(ctx context.Context, params store.CreateActivityEventParams) (store.ActivityEvent, error)
	ListActivityEvents(ctx context.Context, limit, offset int) ([]store.ActivityEvent, error)
	ListActivityEventsByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]store.ActivityEvent, error)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ActivityProcessor struct {
	store  ActivityStore
	logger *observability.Logger
}

func New(store ActivityStore, logger *observability.Logger) ActivityProcessor {
	return ActivityProcessor{
		store:  store,
		logger: logger,
	}
}

// Record appends an event to the activity feed. Workflow transactions
// write their own feed rows atomically; this path is for events recorded
// outside a workflow write.
func (p *ActivityProcessor) Record(ctx context.Context, params store.CreateActivityEventParams) (store.ActivityEvent, error) {
	event, err := p.store.CreateActivityEvent(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to record activity event", err)
		return store.ActivityEvent{}, err
	}
	return event, nil
}

// ListFeed returns a page of the activity feed, newest first
func (p *ActivityProcessor) ListFeed(ctx context.Context, limit, offset int) ([]store.ActivityEvent, error) {
	limit, offset = clampPage(limit, offset)
	return p.store.ListActivityEvents(ctx, limit, offset)
}

// ListFeedForActor returns a page of events performed by one user
func (p *ActivityProcessor) ListFeedForActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]store.ActivityEvent, error) {
	limit, offset = clampPage(limit, offset)
	return p.store.ListActivityEventsByActor(ctx, actorID, limit, offset)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
