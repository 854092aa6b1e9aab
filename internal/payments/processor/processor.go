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

// PaymentStore defines the database operations required by PaymentProcessor
type PaymentStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetJoinRequestByID(ctx context.Context, requestID uuid.UUID) (store.JoinRequest, error)
	GetPaymentRequestByID(ctx context.Context, paymentRequestID uuid.UUID) (store.PaymentRequest, error)
	ListPaymentRequestsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.PaymentRequest, error)
	ListPaymentRequestsBySeller(ctx context.Context, sellerID uuid.UUID) ([]store.PaymentRequest, error)
	CreateCharge(ctx context.Context, params store.CreateChargeParams) (store.ChargeResult, error)
	RespondToCharge(ctx context.Context, paymentRequestID uuid.UUID, approved bool) (store.ChargeResult, error)
	AppealCharge(ctx context.Context, paymentRequestID uuid.UUID, reason string) (store.PaymentRequest, store.Message, error)
	ResolveAppeal(ctx context.Context, paymentRequestID uuid.UUID, approved bool, adminID uuid.UUID) (store.ChargeResult, error)
	MarkChargePaid(ctx context.Context, paymentRequestID uuid.UUID, proofURL string) (store.ChargeResult, error)
	CompleteCharge(ctx context.Context, paymentRequestID uuid.UUID) (store.PaymentRequest, error)
}

// TallyInvalidator drops cached tallies after charge-mutating writes
type TallyInvalidator interface {
	Invalidate(ctx context.Context, campaignID uuid.UUID)
}

// EventDispatcher defines the event operations required by PaymentProcessor
type EventDispatcher interface {
	DispatchChargeCreated(ctx context.Context, campaignID, chargeID, buyerID uuid.UUID, amount int64, accounts int)
	DispatchChargeResponded(ctx context.Context, campaignID, chargeID, sellerID uuid.UUID, approved bool)
	DispatchChargeAppealed(ctx context.Context, campaignID, chargeID, buyerID uuid.UUID, reason string)
	DispatchAppealResolved(ctx context.Context, campaignID, chargeID, sellerID uuid.UUID, approved bool)
	DispatchChargePaid(ctx context.Context, campaignID, chargeID, sellerID uuid.UUID, amount int64)
}

// ThreadBroadcaster pushes workflow messages to live subscribers of a
// request thread.
type ThreadBroadcaster interface {
	Broadcast(ctx context.Context, requestID uuid.UUID, payload []byte)
}

var (
	ErrChargeNotFound        = errors.New("charge not found")
	ErrRequestNotFound       = errors.New("join request not found")
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrUnauthorized          = errors.New("unauthorized access to charge")
	ErrRequestNotAccepted    = errors.New("join request is not accepted")
	ErrChargeOpen            = errors.New("request already has an unresolved charge")
	ErrChargeOutOfRange      = errors.New("requested accounts exceed remaining capacity")
	ErrCampaignNotChargeable = errors.New("campaign cannot be charged in its current state")
	ErrChargeNotActionable   = errors.New("charge does not permit this action")
)

type PaymentProcessor struct {
	store           PaymentStore
	tally           TallyInvalidator
	eventDispatcher EventDispatcher
	broadcaster     ThreadBroadcaster
	logger          *observability.Logger
}

func New(store PaymentStore, tally TallyInvalidator, eventDispatcher EventDispatcher, broadcaster ThreadBroadcaster, logger *observability.Logger) PaymentProcessor {
	return PaymentProcessor{
		store:           store,
		tally:           tally,
		eventDispatcher: eventDispatcher,
		broadcaster:     broadcaster,
		logger:          logger,
	}
}

// CreateChargeRequest represents a seller's request for payment
type CreateChargeRequest struct {
	RequestID         uuid.UUID
	AccountsRequested int
}

// CreateCharge raises a charge on behalf of the seller of an accepted
// join request. Amount is derived server-side from the campaign's unit
// price, never taken from the client.
func (p *PaymentProcessor) CreateCharge(ctx context.Context, actor store.User, req CreateChargeRequest) (store.ChargeResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "request_id", Value: req.RequestID.String()},
		observability.Field{Key: "seller_id", Value: actor.ID.String()},
	)

	request, err := p.store.GetJoinRequestByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ChargeResult{}, ErrRequestNotFound
		}
		p.logger.Error(ctx, "failed to get join request", err)
		return store.ChargeResult{}, err
	}
	if request.UserID != actor.ID {
		return store.ChargeResult{}, ErrUnauthorized
	}
	if request.Status != store.JoinRequestStatusAccepted {
		return store.ChargeResult{}, ErrRequestNotAccepted
	}

	campaign, err := p.store.GetCampaignByID(ctx, request.CampaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ChargeResult{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.ChargeResult{}, err
	}

	result, err := p.store.CreateCharge(ctx, store.CreateChargeParams{
		RequestID:         request.ID,
		CampaignID:        campaign.ID,
		SellerID:          actor.ID,
		BuyerID:           campaign.OwnerID,
		AccountsRequested: req.AccountsRequested,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidState):
			return store.ChargeResult{}, ErrCampaignNotChargeable
		case errors.Is(err, store.ErrConflict):
			return store.ChargeResult{}, ErrChargeOpen
		case errors.Is(err, store.ErrCapacityReached):
			return store.ChargeResult{}, ErrChargeOutOfRange
		}
		p.logger.Error(ctx, "failed to create charge", err)
		return store.ChargeResult{}, err
	}

	p.tally.Invalidate(ctx, campaign.ID)
	p.broadcast(ctx, result.Message)
	p.eventDispatcher.DispatchChargeCreated(ctx, campaign.ID, result.PaymentRequest.ID, campaign.OwnerID,
		result.PaymentRequest.Amount, req.AccountsRequested)
	p.logger.Info(ctx, "charge created")
	return result, nil
}

// RespondToCharge records the buyer's approve/reject decision
func (p *PaymentProcessor) RespondToCharge(ctx context.Context, chargeID uuid.UUID, actor store.User, approved bool) (store.ChargeResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "charge_id", Value: chargeID.String()})

	pr, err := p.loadCharge(ctx, chargeID)
	if err != nil {
		return store.ChargeResult{}, err
	}
	if pr.BuyerID != actor.ID && actor.Role != store.UserRoleAdmin {
		return store.ChargeResult{}, ErrUnauthorized
	}

	result, err := p.store.RespondToCharge(ctx, chargeID, approved)
	if err != nil {
		if errors.Is(err, store.ErrInvalidState) {
			return store.ChargeResult{}, ErrChargeNotActionable
		}
		p.logger.Error(ctx, "failed to respond to charge", err)
		return store.ChargeResult{}, err
	}

	p.tally.Invalidate(ctx, pr.CampaignID)
	p.broadcast(ctx, result.Message)
	p.eventDispatcher.DispatchChargeResponded(ctx, pr.CampaignID, chargeID, pr.SellerID, approved)
	p.logger.Info(ctx, "charge responded")
	return result, nil
}

// AppealCharge escalates a rejected charge. Seller only, once per charge.
func (p *PaymentProcessor) AppealCharge(ctx context.Context, chargeID uuid.UUID, actor store.User, reason string) (store.PaymentRequest, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "charge_id", Value: chargeID.String()})

	pr, err := p.loadCharge(ctx, chargeID)
	if err != nil {
		return store.PaymentRequest{}, err
	}
	if pr.SellerID != actor.ID {
		return store.PaymentRequest{}, ErrUnauthorized
	}

	appealed, message, err := p.store.AppealCharge(ctx, chargeID, reason)
	if err != nil {
		if errors.Is(err, store.ErrInvalidState) {
			return store.PaymentRequest{}, ErrChargeNotActionable
		}
		p.logger.Error(ctx, "failed to appeal charge", err)
		return store.PaymentRequest{}, err
	}

	p.broadcast(ctx, message)
	p.eventDispatcher.DispatchChargeAppealed(ctx, pr.CampaignID, chargeID, pr.BuyerID, reason)
	p.logger.Info(ctx, "charge appealed")
	return appealed, nil
}

// ResolveAppeal decides an appealed charge. The handler enforces the
// admin role; the decision is final.
func (p *PaymentProcessor) ResolveAppeal(ctx context.Context, chargeID uuid.UUID, admin store.User, approved bool) (store.ChargeResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "charge_id", Value: chargeID.String()},
		observability.Field{Key: "admin_id", Value: admin.ID.String()},
	)

	pr, err := p.loadCharge(ctx, chargeID)
	if err != nil {
		return store.ChargeResult{}, err
	}

	result, err := p.store.ResolveAppeal(ctx, chargeID, approved, admin.ID)
	if err != nil {
		if errors.Is(err, store.ErrInvalidState) {
			return store.ChargeResult{}, ErrChargeNotActionable
		}
		p.logger.Error(ctx, "failed to resolve appeal", err)
		return store.ChargeResult{}, err
	}

	p.tally.Invalidate(ctx, pr.CampaignID)
	p.broadcast(ctx, result.Message)
	p.eventDispatcher.DispatchAppealResolved(ctx, pr.CampaignID, chargeID, pr.SellerID, approved)
	p.logger.Info(ctx, "appeal resolved")
	return result, nil
}

// MarkChargePaid records the buyer's settlement with a payment proof
func (p *PaymentProcessor) MarkChargePaid(ctx context.Context, chargeID uuid.UUID, actor store.User, proofURL string) (store.ChargeResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "charge_id", Value: chargeID.String()})

	pr, err := p.loadCharge(ctx, chargeID)
	if err != nil {
		return store.ChargeResult{}, err
	}
	if pr.BuyerID != actor.ID && actor.Role != store.UserRoleAdmin {
		return store.ChargeResult{}, ErrUnauthorized
	}

	result, err := p.store.MarkChargePaid(ctx, chargeID, proofURL)
	if err != nil {
		if errors.Is(err, store.ErrInvalidState) {
			return store.ChargeResult{}, ErrChargeNotActionable
		}
		p.logger.Error(ctx, "failed to mark charge paid", err)
		return store.ChargeResult{}, err
	}

	p.tally.Invalidate(ctx, pr.CampaignID)
	p.broadcast(ctx, result.Message)
	p.eventDispatcher.DispatchChargePaid(ctx, pr.CampaignID, chargeID, pr.SellerID, pr.Amount)
	p.logger.Info(ctx, "charge paid")
	return result, nil
}

// CompleteCharge settles an approved charge by arbitration. Admin only.
func (p *PaymentProcessor) CompleteCharge(ctx context.Context, chargeID uuid.UUID) (store.PaymentRequest, error) {
	pr, err := p.store.CompleteCharge(ctx, chargeID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.PaymentRequest{}, ErrChargeNotFound
		case errors.Is(err, store.ErrInvalidState):
			return store.PaymentRequest{}, ErrChargeNotActionable
		}
		p.logger.Error(ctx, "failed to complete charge", err)
		return store.PaymentRequest{}, err
	}
	p.tally.Invalidate(ctx, pr.CampaignID)
	return pr, nil
}

// ListForCampaign returns a campaign's charges, buyer or admin only
func (p *PaymentProcessor) ListForCampaign(ctx context.Context, campaignID uuid.UUID, actor store.User) ([]store.PaymentRequest, error) {
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

	charges, err := p.store.ListPaymentRequestsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list charges", err)
		return nil, err
	}
	return charges, nil
}

// ListOwn returns the seller's charges across campaigns
func (p *PaymentProcessor) ListOwn(ctx context.Context, sellerID uuid.UUID) ([]store.PaymentRequest, error) {
	charges, err := p.store.ListPaymentRequestsBySeller(ctx, sellerID)
	if err != nil {
		p.logger.Error(ctx, "failed to list own charges", err)
		return nil, err
	}
	return charges, nil
}

func (p *PaymentProcessor) broadcast(ctx context.Context, message store.Message) {
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

func (p *PaymentProcessor) loadCharge(ctx context.Context, chargeID uuid.UUID) (store.PaymentRequest, error) {
	pr, err := p.store.GetPaymentRequestByID(ctx, chargeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.PaymentRequest{}, ErrChargeNotFound
		}
		p.logger.Error(ctx, "failed to get charge", err)
		return store.PaymentRequest{}, err
	}
	return pr, nil
}
