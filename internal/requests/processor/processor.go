package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/roles"
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

// RequestStore defines the database operations required by RequestProcessor
type RequestStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	CreateJoinRequest(ctx context.Context, campaignID, userID uuid.UUID) (store.JoinRequest, error)
	GetJoinRequestByID(ctx context.Context, requestID uuid.UUID) (store.JoinRequest, error)
	ListJoinRequestsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.JoinRequest, error)
	ListJoinRequestsByUser(ctx context.Context, userID uuid.UUID) ([]store.JoinRequest, error)
	AcceptJoinRequest(ctx context.Context, requestID uuid.UUID) (store.AcceptJoinRequestResult, error)
	RejectJoinRequest(ctx context.Context, requestID uuid.UUID) (store.JoinRequest, error)
}

// EventDispatcher defines the event operations required by RequestProcessor
type EventDispatcher interface {
	DispatchJoinRequestCreated(ctx context.Context, campaignID, requestID, ownerID uuid.UUID)
	DispatchJoinRequestAccepted(ctx context.Context, campaignID, requestID, sellerID uuid.UUID)
	DispatchJoinRequestRejected(ctx context.Context, campaignID, requestID uuid.UUID)
}

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrRequestNotFound   = errors.New("join request not found")
	ErrCampaignNotOpen   = errors.New("campaign is not accepting applications")
	ErrOwnCampaign       = errors.New("cannot apply to your own campaign")
	ErrAlreadyApplied    = errors.New("already applied to this campaign")
	ErrCampaignFull      = errors.New("campaign has no free slots")
	ErrRequestNotPending = errors.New("join request is not pending")
	ErrUnauthorized      = errors.New("unauthorized access to join request")
)

type RequestProcessor struct {
	store           RequestStore
	eventDispatcher EventDispatcher
	logger          *observability.Logger
}

func New(store RequestStore, eventDispatcher EventDispatcher, logger *observability.Logger) RequestProcessor {
	return RequestProcessor{
		store:           store,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Apply creates a join request for a seller on an active campaign
func (p *RequestProcessor) Apply(ctx context.Context, campaignID uuid.UUID, applicant store.User) (store.JoinRequest, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "applicant_id", Value: applicant.ID.String()},
	)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.JoinRequest{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.JoinRequest{}, err
	}

	if campaign.OwnerID == applicant.ID {
		return store.JoinRequest{}, ErrOwnCampaign
	}
	if campaign.Status != store.CampaignStatusActive {
		return store.JoinRequest{}, ErrCampaignNotOpen
	}
	if campaign.VerificationCount >= campaign.AccountCount {
		return store.JoinRequest{}, ErrCampaignFull
	}

	request, err := p.store.CreateJoinRequest(ctx, campaignID, applicant.ID)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.JoinRequest{}, ErrAlreadyApplied
		}
		p.logger.Error(ctx, "failed to create join request", err)
		return store.JoinRequest{}, err
	}

	p.eventDispatcher.DispatchJoinRequestCreated(ctx, campaignID, request.ID, campaign.OwnerID)
	p.logger.Info(ctx, "join request created")
	return request, nil
}

// Accept approves a pending request and claims a verifier slot. Owner or
// admin only. The capacity check runs atomically in the store.
func (p *RequestProcessor) Accept(ctx context.Context, requestID uuid.UUID, actor store.User) (store.AcceptJoinRequestResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "request_id", Value: requestID.String()})

	request, _, err := p.authorizeDecision(ctx, requestID, actor)
	if err != nil {
		return store.AcceptJoinRequestResult{}, err
	}

	result, err := p.store.AcceptJoinRequest(ctx, requestID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.AcceptJoinRequestResult{}, ErrRequestNotFound
		case errors.Is(err, store.ErrInvalidState):
			return store.AcceptJoinRequestResult{}, ErrRequestNotPending
		case errors.Is(err, store.ErrCapacityReached):
			return store.AcceptJoinRequestResult{}, ErrCampaignFull
		}
		p.logger.Error(ctx, "failed to accept join request", err)
		return store.AcceptJoinRequestResult{}, err
	}

	p.eventDispatcher.DispatchJoinRequestAccepted(ctx, result.Campaign.ID, requestID, request.UserID)
	p.logger.Info(ctx, "join request accepted")
	return result, nil
}

// Reject declines a pending request. Owner or admin only.
func (p *RequestProcessor) Reject(ctx context.Context, requestID uuid.UUID, actor store.User) (store.JoinRequest, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "request_id", Value: requestID.String()})

	request, _, err := p.authorizeDecision(ctx, requestID, actor)
	if err != nil {
		return store.JoinRequest{}, err
	}

	rejected, err := p.store.RejectJoinRequest(ctx, requestID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.JoinRequest{}, ErrRequestNotFound
		case errors.Is(err, store.ErrInvalidState):
			return store.JoinRequest{}, ErrRequestNotPending
		}
		p.logger.Error(ctx, "failed to reject join request", err)
		return store.JoinRequest{}, err
	}

	p.eventDispatcher.DispatchJoinRequestRejected(ctx, request.CampaignID, requestID)
	p.logger.Info(ctx, "join request rejected")
	return rejected, nil
}

// ListForCampaign returns a campaign's join requests. Owner or admin only.
func (p *RequestProcessor) ListForCampaign(ctx context.Context, campaignID uuid.UUID, actor store.User) ([]store.JoinRequest, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return nil, err
	}
	if !roles.CanManageCampaign(roles.Resolve(actor, campaign, nil)) {
		return nil, ErrUnauthorized
	}

	requests, err := p.store.ListJoinRequestsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list join requests", err)
		return nil, err
	}
	return requests, nil
}

// ListOwn returns the viewer's join requests across campaigns
func (p *RequestProcessor) ListOwn(ctx context.Context, userID uuid.UUID) ([]store.JoinRequest, error) {
	requests, err := p.store.ListJoinRequestsByUser(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list own join requests", err)
		return nil, err
	}
	return requests, nil
}

// GetRequest returns a single request, visible to its participants only
func (p *RequestProcessor) GetRequest(ctx context.Context, requestID uuid.UUID, viewer store.User) (store.JoinRequest, error) {
	request, err := p.store.GetJoinRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.JoinRequest{}, ErrRequestNotFound
		}
		p.logger.Error(ctx, "failed to get join request", err)
		return store.JoinRequest{}, err
	}

	campaign, err := p.store.GetCampaignByID(ctx, request.CampaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get campaign for request", err)
		return store.JoinRequest{}, err
	}
	if !roles.CanViewThread(roles.Resolve(viewer, campaign, &request)) {
		return store.JoinRequest{}, ErrUnauthorized
	}
	return request, nil
}

// authorizeDecision loads the request and its campaign and verifies the
// actor may decide on it.
func (p *RequestProcessor) authorizeDecision(ctx context.Context, requestID uuid.UUID, actor store.User) (store.JoinRequest, store.Campaign, error) {
	request, err := p.store.GetJoinRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.JoinRequest{}, store.Campaign{}, ErrRequestNotFound
		}
		p.logger.Error(ctx, "failed to get join request", err)
		return store.JoinRequest{}, store.Campaign{}, err
	}

	campaign, err := p.store.GetCampaignByID(ctx, request.CampaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get campaign for request", err)
		return store.JoinRequest{}, store.Campaign{}, err
	}
	if !roles.CanManageCampaign(roles.Resolve(actor, campaign, nil)) {
		return store.JoinRequest{}, store.Campaign{}, ErrUnauthorized
	}
	return request, campaign, nil
}
