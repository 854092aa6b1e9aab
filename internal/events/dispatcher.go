package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/clients/kafka"
	"github.com/p2p-kyc/verify-sub000/internal/jobs"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
)

// Event type constants published to the event stream.
const (
	EventCampaignCreated     = "campaign.created"
	EventCampaignCancelled   = "campaign.cancelled"
	EventJoinRequestCreated  = "join_request.created"
	EventJoinRequestAccepted = "join_request.accepted"
	EventJoinRequestRejected = "join_request.rejected"
	EventChargeCreated       = "charge.created"
	EventChargeResponded     = "charge.responded"
	EventChargeAppealed      = "charge.appealed"
	EventAppealResolved      = "charge.appeal_resolved"
	EventChargePaid          = "charge.paid"
	EventRefundRequested     = "refund.requested"
	EventRefundCompleted     = "refund.completed"
	EventMessagePosted       = "message.posted"
)

// Dispatcher fans workflow events out to the Kafka stream and enqueues
// the matching notification job. Both sinks are optional: a nil producer
// or job client turns that sink off, which keeps the API usable in
// development without brokers.
type Dispatcher struct {
	producer  *kafka.Producer
	jobClient *jobs.Client
	logger    *observability.Logger
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(producer *kafka.Producer, jobClient *jobs.Client, logger *observability.Logger) *Dispatcher {
	return &Dispatcher{
		producer:  producer,
		jobClient: jobClient,
		logger:    logger,
	}
}

// Dispatch publishes an event and, when a recipient is given, enqueues a
// notification job. Failures are logged, never surfaced: workflow writes
// have already committed and must not be rolled back by a sink outage.
func (d *Dispatcher) Dispatch(ctx context.Context, eventType string, campaignID uuid.UUID, recipientID *uuid.UUID, notificationKind string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["campaign_id"] = campaignID.String()

	d.publish(ctx, eventType, campaignID, data)
	if recipientID != nil && notificationKind != "" {
		d.notify(ctx, notificationKind, campaignID, *recipientID, data)
	}
}

func (d *Dispatcher) publish(ctx context.Context, eventType string, campaignID uuid.UUID, data map[string]interface{}) {
	if d.producer == nil {
		return
	}
	event := kafka.EventMessage{
		ID:         uuid.New().String(),
		Type:       eventType,
		CampaignID: campaignID.String(),
		Data:       data,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := d.producer.PublishEvent(ctx, event); err != nil {
		d.logger.Error(ctx, "failed to publish event", err)
	}
}

func (d *Dispatcher) notify(ctx context.Context, kind string, campaignID, recipientID uuid.UUID, data map[string]interface{}) {
	if d.jobClient == nil {
		return
	}
	payload := jobs.NotificationJobPayload{
		Kind:        kind,
		CampaignID:  campaignID,
		RecipientID: recipientID,
		Data:        data,
	}
	if err := d.jobClient.EnqueueNotificationJob(ctx, payload); err != nil {
		d.logger.Error(ctx, "failed to enqueue notification job", err)
	}
}

// DispatchCampaignCreated publishes a new campaign for stream consumers.
func (d *Dispatcher) DispatchCampaignCreated(ctx context.Context, campaignID, ownerID uuid.UUID, name string) {
	d.Dispatch(ctx, EventCampaignCreated, campaignID, nil, "", map[string]interface{}{
		"owner_id": ownerID.String(),
		"name":     name,
	})
}

// DispatchJoinRequestCreated notifies the campaign owner of a new applicant.
func (d *Dispatcher) DispatchJoinRequestCreated(ctx context.Context, campaignID, requestID, ownerID uuid.UUID) {
	d.Dispatch(ctx, EventJoinRequestCreated, campaignID, &ownerID, jobs.NotificationJoinRequestCreated, map[string]interface{}{
		"request_id": requestID.String(),
	})
}

// DispatchJoinRequestAccepted notifies the seller their request was accepted.
func (d *Dispatcher) DispatchJoinRequestAccepted(ctx context.Context, campaignID, requestID, sellerID uuid.UUID) {
	d.Dispatch(ctx, EventJoinRequestAccepted, campaignID, &sellerID, jobs.NotificationJoinRequestAccepted, map[string]interface{}{
		"request_id": requestID.String(),
	})
}

// DispatchJoinRequestRejected publishes the rejection without a notification.
func (d *Dispatcher) DispatchJoinRequestRejected(ctx context.Context, campaignID, requestID uuid.UUID) {
	d.Dispatch(ctx, EventJoinRequestRejected, campaignID, nil, "", map[string]interface{}{
		"request_id": requestID.String(),
	})
}

// DispatchChargeCreated notifies the buyer of a new charge.
func (d *Dispatcher) DispatchChargeCreated(ctx context.Context, campaignID, chargeID, buyerID uuid.UUID, amount int64, accounts int) {
	d.Dispatch(ctx, EventChargeCreated, campaignID, &buyerID, jobs.NotificationChargeCreated, map[string]interface{}{
		"charge_id": chargeID.String(),
		"amount":    amount,
		"accounts":  accounts,
	})
}

// DispatchChargeResponded notifies the seller of the buyer's decision.
func (d *Dispatcher) DispatchChargeResponded(ctx context.Context, campaignID, chargeID, sellerID uuid.UUID, approved bool) {
	d.Dispatch(ctx, EventChargeResponded, campaignID, &sellerID, jobs.NotificationChargeResponded, map[string]interface{}{
		"charge_id": chargeID.String(),
		"approved":  approved,
	})
}

// DispatchChargeAppealed notifies the buyer that a rejected charge was escalated.
func (d *Dispatcher) DispatchChargeAppealed(ctx context.Context, campaignID, chargeID, buyerID uuid.UUID, reason string) {
	d.Dispatch(ctx, EventChargeAppealed, campaignID, &buyerID, jobs.NotificationChargeAppealed, map[string]interface{}{
		"charge_id": chargeID.String(),
		"reason":    reason,
	})
}

// DispatchAppealResolved notifies the seller of the arbiter's decision.
func (d *Dispatcher) DispatchAppealResolved(ctx context.Context, campaignID, chargeID, sellerID uuid.UUID, approved bool) {
	d.Dispatch(ctx, EventAppealResolved, campaignID, &sellerID, jobs.NotificationAppealResolved, map[string]interface{}{
		"charge_id": chargeID.String(),
		"approved":  approved,
	})
}

// DispatchChargePaid notifies the seller that payment was sent.
func (d *Dispatcher) DispatchChargePaid(ctx context.Context, campaignID, chargeID, sellerID uuid.UUID, amount int64) {
	d.Dispatch(ctx, EventChargePaid, campaignID, &sellerID, jobs.NotificationChargePaid, map[string]interface{}{
		"charge_id": chargeID.String(),
		"amount":    amount,
	})
}

// DispatchCampaignCancelled publishes one cancellation event carrying the
// affected sellers, then notifies each of them.
func (d *Dispatcher) DispatchCampaignCancelled(ctx context.Context, campaignID uuid.UUID, sellerIDs []uuid.UUID) {
	ids := make([]string, 0, len(sellerIDs))
	for _, sellerID := range sellerIDs {
		ids = append(ids, sellerID.String())
	}
	data := map[string]interface{}{
		"campaign_id": campaignID.String(),
		"seller_ids":  ids,
	}
	d.publish(ctx, EventCampaignCancelled, campaignID, data)
	for _, sellerID := range sellerIDs {
		d.notify(ctx, jobs.NotificationCampaignCancelled, campaignID, sellerID, data)
	}
}

// DispatchRefundRequested publishes a refund request for the admin queue.
func (d *Dispatcher) DispatchRefundRequested(ctx context.Context, campaignID, refundID uuid.UUID, amount int64) {
	d.Dispatch(ctx, EventRefundRequested, campaignID, nil, "", map[string]interface{}{
		"refund_id": refundID.String(),
		"amount":    amount,
	})
}

// DispatchRefundCompleted notifies the buyer their refund was paid out.
func (d *Dispatcher) DispatchRefundCompleted(ctx context.Context, campaignID, refundID, buyerID uuid.UUID, amount int64) {
	d.Dispatch(ctx, EventRefundCompleted, campaignID, &buyerID, jobs.NotificationRefundCompleted, map[string]interface{}{
		"refund_id": refundID.String(),
		"amount":    amount,
	})
}

// DispatchMessagePosted publishes a chat message event for stream consumers.
func (d *Dispatcher) DispatchMessagePosted(ctx context.Context, campaignID, requestID, messageID uuid.UUID) {
	d.Dispatch(ctx, EventMessagePosted, campaignID, nil, "", map[string]interface{}{
		"request_id": requestID.String(),
		"message_id": messageID.String(),
	})
}
