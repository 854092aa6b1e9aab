package activity

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/events"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/store"
	"github.com/p2p-kyc/verify-sub000/internal/workers"
)

// ActivityStore defines the database operations required by EventProcessor
type ActivityStore interface {
	CreateActivityEvent(ctx context.Context, params store.CreateActivityEventParams) (store.ActivityEvent, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
}

// titles maps event types to feed titles. Event types absent from this
// map are skipped: the cancel, appeal and refund workflows write their
// feed rows inside the workflow transaction, and projecting them again
// here would duplicate them.
var titles = map[string]string{
	events.EventCampaignCreated:     "Campaign created",
	events.EventJoinRequestCreated:  "Seller applied to campaign",
	events.EventJoinRequestAccepted: "Join request accepted",
	events.EventJoinRequestRejected: "Join request rejected",
	events.EventChargeCreated:       "Charge raised",
	events.EventChargeResponded:     "Charge decided",
	events.EventChargeAppealed:      "Charge appealed",
	events.EventChargePaid:          "Charge paid",
	events.EventRefundRequested:     "Refund requested",
}

// EventProcessor projects domain events from the stream into the
// activity feed.
type EventProcessor struct {
	store  ActivityStore
	logger *observability.Logger
}

func NewEventProcessor(store ActivityStore, logger *observability.Logger) *EventProcessor {
	return &EventProcessor{
		store:  store,
		logger: logger,
	}
}

// Name returns the processor name for logging and metrics.
func (p *EventProcessor) Name() string {
	return "activity"
}

// Process writes one feed row per projected event. Skipped event types
// commit without a write. Delivery is at-least-once, so a redelivered
// event can produce a duplicate feed row.
func (p *EventProcessor) Process(ctx context.Context, event workers.EventMessage) error {
	title, ok := titles[event.Type]
	if !ok {
		return nil
	}

	campaignID, err := uuid.Parse(event.CampaignID)
	if err != nil {
		p.logger.Error(ctx, "event carries an invalid campaign id, skipping", err)
		return nil
	}

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		// The campaign may be hard-deleted by the time a replayed
		// event arrives. Nothing left to describe.
		p.logger.InfoWithError(ctx, "campaign gone, skipping activity projection", err)
		return nil
	}

	description := fmt.Sprintf("%s on campaign %q", title, campaign.Name)
	_, err = p.store.CreateActivityEvent(ctx, store.CreateActivityEventParams{
		Type:        event.Type,
		Title:       title,
		Description: description,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to project activity event", err)
		return err
	}
	return nil
}
