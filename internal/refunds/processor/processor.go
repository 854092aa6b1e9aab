package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

// RefundStore defines the database operations required by RefundProcessor
type RefundStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListJoinRequestsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.JoinRequest, error)
	CreateRefundRequest(ctx context.Context, params store.CreateRefundRequestParams) (store.RefundRequest, error)
	ListRefundRequestsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.RefundRequest, error)
	ListRefundRequestsByStatus(ctx context.Context, status string) ([]store.RefundRequest, error)
	ResolveRefundRequest(ctx context.Context, refundID uuid.UUID, approved bool) (store.RefundRequest, error)
	CompleteRefund(ctx context.Context, refundID uuid.UUID, proofURL string, adminID uuid.UUID) (store.CompleteRefundResult, error)
}

// EventDispatcher defines the event operations required by RefundProcessor
type EventDispatcher interface {
	DispatchRefundRequested(ctx context.Context, campaignID, refundID uuid.UUID, amount int64)
	DispatchRefundCompleted(ctx context.Context, campaignID, refundID, buyerID uuid.UUID, amount int64)
}

// ThreadBroadcaster pushes workflow messages to live subscribers of a
// request thread.
type ThreadBroadcaster interface {
	Broadcast(ctx context.Context, requestID uuid.UUID, payload []byte)
}

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrRefundNotFound    = errors.New("refund request not found")
	ErrUnauthorized      = errors.New("unauthorized access to refund request")
	ErrDepositNotFunded  = errors.New("campaign deposit was never approved")
	ErrCampaignCompleted = errors.New("completed campaigns cannot be refunded")
	ErrRefundOpen        = errors.New("campaign already has an open refund request")
	ErrNotActionable     = errors.New("refund request does not permit this action")
)

type RefundProcessor struct {
	store           RefundStore
	eventDispatcher EventDispatcher
	broadcaster     ThreadBroadcaster
	logger          *observability.Logger
}

func New(store RefundStore, eventDispatcher EventDispatcher, broadcaster ThreadBroadcaster, logger *observability.Logger) RefundProcessor {
	return RefundProcessor{
		store:           store,
		eventDispatcher: eventDispatcher,
		broadcaster:     broadcaster,
		logger:          logger,
	}
}

// RequestRefund opens a refund request for the buyer's deposit. The
// amount is the campaign's total price; partial refunds go through
// arbitration, not through this path.
func (p *RefundProcessor) RequestRefund(ctx context.Context, campaignID uuid.UUID, actor store.User) (store.RefundRequest, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "buyer_id", Value: actor.ID.String()},
	)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.RefundRequest{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.RefundRequest{}, err
	}
	if campaign.OwnerID != actor.ID {
		return store.RefundRequest{}, ErrUnauthorized
	}
	if campaign.PaymentStatus != store.CampaignPaymentStatusApproved {
		return store.RefundRequest{}, ErrDepositNotFunded
	}
	if campaign.Status == store.CampaignStatusCompleted {
		return store.RefundRequest{}, ErrCampaignCompleted
	}

	// The payout system message lands in a join-request thread, so anchor
	// the refund to the campaign's first accepted request when one exists.
	requests, err := p.store.ListJoinRequestsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list join requests", err)
		return store.RefundRequest{}, err
	}
	var threadID *uuid.UUID
	for i := range requests {
		if requests[i].Status == store.JoinRequestStatusAccepted {
			threadID = &requests[i].ID
			break
		}
	}

	refund, err := p.store.CreateRefundRequest(ctx, store.CreateRefundRequestParams{
		CampaignID: campaignID,
		BuyerID:    actor.ID,
		RequestID:  threadID,
		Amount:     campaign.TotalPrice,
		Currency:   store.CurrencyUSDT,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.RefundRequest{}, ErrRefundOpen
		}
		p.logger.Error(ctx, "failed to create refund request", err)
		return store.RefundRequest{}, err
	}

	p.eventDispatcher.DispatchRefundRequested(ctx, campaignID, refund.ID, refund.Amount)
	p.logger.Info(ctx, "refund requested")
	return refund, nil
}

// Resolve approves or rejects a pending refund request. Admin only.
func (p *RefundProcessor) Resolve(ctx context.Context, refundID uuid.UUID, approved bool) (store.RefundRequest, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "refund_id", Value: refundID.String()})

	refund, err := p.store.ResolveRefundRequest(ctx, refundID, approved)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.RefundRequest{}, ErrRefundNotFound
		case errors.Is(err, store.ErrInvalidState):
			return store.RefundRequest{}, ErrNotActionable
		}
		p.logger.Error(ctx, "failed to resolve refund request", err)
		return store.RefundRequest{}, err
	}

	p.logger.Info(ctx, "refund request resolved")
	return refund, nil
}

// Complete marks an approved refund as paid out and force-cancels the
// campaign. Admin only; the payout proof lands in the buyer's thread.
func (p *RefundProcessor) Complete(ctx context.Context, refundID uuid.UUID, admin store.User, proofURL string) (store.CompleteRefundResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "refund_id", Value: refundID.String()},
		observability.Field{Key: "admin_id", Value: admin.ID.String()},
	)

	result, err := p.store.CompleteRefund(ctx, refundID, proofURL, admin.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.CompleteRefundResult{}, ErrRefundNotFound
		case errors.Is(err, store.ErrInvalidState):
			return store.CompleteRefundResult{}, ErrNotActionable
		}
		p.logger.Error(ctx, "failed to complete refund", err)
		return store.CompleteRefundResult{}, err
	}

	if result.Message != nil {
		p.broadcast(ctx, *result.Message)
	}
	p.eventDispatcher.DispatchRefundCompleted(ctx, result.Refund.CampaignID, refundID, result.Refund.BuyerID, result.Refund.Amount)
	p.logger.Info(ctx, "refund completed")
	return result, nil
}

func (p *RefundProcessor) broadcast(ctx context.Context, message store.Message) {
	if p.broadcaster == nil {
		return
	}
	payload, err := json.Marshal(message)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal message for broadcast", err)
		return
	}
	p.broadcaster.Broadcast(ctx, message.RequestID, payload)
}

// ListForCampaign returns a campaign's refund requests, owner or admin only
func (p *RefundProcessor) ListForCampaign(ctx context.Context, campaignID uuid.UUID, actor store.User) ([]store.RefundRequest, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return nil, err
	}
	if campaign.OwnerID != actor.ID && actor.Role != store.UserRoleAdmin {
		return nil, ErrUnauthorized
	}

	refunds, err := p.store.ListRefundRequestsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list refund requests", err)
		return nil, err
	}
	return refunds, nil
}

// ListPending returns the admin queue of unresolved refund requests
func (p *RefundProcessor) ListPending(ctx context.Context) ([]store.RefundRequest, error) {
	refunds, err := p.store.ListRefundRequestsByStatus(ctx, store.RefundStatusPending)
	if err != nil {
		p.logger.Error(ctx, "failed to list pending refund requests", err)
		return nil, err
	}
	return refunds, nil
}
