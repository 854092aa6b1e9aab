package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/roles"
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaignsByOwner(ctx context.Context, ownerID uuid.UUID) ([]store.Campaign, error)
	ListCampaignsByStatus(ctx context.Context, status string) ([]store.Campaign, error)
	UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error)
	TransitionCampaignStatus(ctx context.Context, campaignID uuid.UUID, fromStatus, toStatus string) (store.Campaign, error)
	SetCampaignPaymentProof(ctx context.Context, campaignID uuid.UUID, proofURL string) (store.Campaign, error)
	ApproveCampaignPaymentProof(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	CancelCampaign(ctx context.Context, campaignID, actorID uuid.UUID, systemMessage string) (store.Campaign, []store.Message, error)
	DeleteCampaign(ctx context.Context, campaignID, ownerID uuid.UUID) error
	GetJoinRequestByCampaignAndUser(ctx context.Context, campaignID, userID uuid.UUID) (store.JoinRequest, error)
	ListJoinRequestsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.JoinRequest, error)
}

// TallyProvider reports how many accounts have been charged for a campaign
type TallyProvider interface {
	ChargedAccounts(ctx context.Context, campaignID uuid.UUID) (int, error)
}

// EventDispatcher defines the event operations required by CampaignProcessor
type EventDispatcher interface {
	DispatchCampaignCreated(ctx context.Context, campaignID, ownerID uuid.UUID, name string)
	DispatchCampaignCancelled(ctx context.Context, campaignID uuid.UUID, sellerIDs []uuid.UUID)
}

// ThreadBroadcaster pushes workflow messages to live subscribers of a
// request thread.
type ThreadBroadcaster interface {
	Broadcast(ctx context.Context, requestID uuid.UUID, payload []byte)
}

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrUnauthorized     = errors.New("unauthorized access to campaign")
	ErrCampaignTerminal = errors.New("campaign is in a terminal state")
	ErrInvalidStatus    = errors.New("invalid campaign status for this operation")
	ErrChargesInFlight  = errors.New("campaign has unresolved charges")
	ErrProofMissing     = errors.New("payment proof has not been submitted")
)

type CampaignProcessor struct {
	store           CampaignStore
	tally           TallyProvider
	eventDispatcher EventDispatcher
	broadcaster     ThreadBroadcaster
	logger          *observability.Logger
}

func New(store CampaignStore, tally TallyProvider, eventDispatcher EventDispatcher, broadcaster ThreadBroadcaster, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:           store,
		tally:           tally,
		eventDispatcher: eventDispatcher,
		broadcaster:     broadcaster,
		logger:          logger,
	}
}

// CreateCampaignRequest represents a request to create a campaign
type CreateCampaignRequest struct {
	Name            string
	Description     string
	Countries       []string
	AccountCount    int
	PricePerAccount int64
}

// CampaignView is a campaign annotated with viewer-specific data
type CampaignView struct {
	Campaign        store.Campaign `json:"campaign"`
	Role            roles.Role     `json:"role"`
	ChargedAccounts int            `json:"charged_accounts"`
}

// CreateCampaign creates a campaign in pending status awaiting deposit
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, ownerID uuid.UUID, req CreateCampaignRequest) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID.String()},
		observability.Field{Key: "campaign_name", Value: req.Name},
	)

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		OwnerID:         ownerID,
		Name:            req.Name,
		Description:     req.Description,
		Countries:       req.Countries,
		AccountCount:    req.AccountCount,
		PricePerAccount: req.PricePerAccount,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	p.eventDispatcher.DispatchCampaignCreated(ctx, campaign.ID, ownerID, campaign.Name)
	p.logger.Info(ctx, "campaign created")
	return campaign, nil
}

// GetCampaign returns the campaign with the viewer's role and charged tally
func (p *CampaignProcessor) GetCampaign(ctx context.Context, campaignID uuid.UUID, viewer store.User) (CampaignView, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CampaignView{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return CampaignView{}, err
	}

	var joinRequest *store.JoinRequest
	if request, err := p.store.GetJoinRequestByCampaignAndUser(ctx, campaignID, viewer.ID); err == nil {
		joinRequest = &request
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to look up join request", err)
		return CampaignView{}, err
	}

	charged, err := p.tally.ChargedAccounts(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get charged tally", err)
		return CampaignView{}, err
	}

	return CampaignView{
		Campaign:        campaign,
		Role:            roles.Resolve(viewer, campaign, joinRequest),
		ChargedAccounts: charged,
	}, nil
}

// ListOwnCampaigns returns the viewer's campaigns
func (p *CampaignProcessor) ListOwnCampaigns(ctx context.Context, ownerID uuid.UUID) ([]store.Campaign, error) {
	campaigns, err := p.store.ListCampaignsByOwner(ctx, ownerID)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	return campaigns, nil
}

// BrowseCampaigns returns campaigns open for applications
func (p *CampaignProcessor) BrowseCampaigns(ctx context.Context) ([]store.Campaign, error) {
	campaigns, err := p.store.ListCampaignsByStatus(ctx, store.CampaignStatusActive)
	if err != nil {
		p.logger.Error(ctx, "failed to browse campaigns", err)
		return nil, err
	}
	return campaigns, nil
}

// UpdateCampaignRequest carries the mutable campaign fields. Nil fields
// are left unchanged.
type UpdateCampaignRequest struct {
	Name            *string
	Description     *string
	Countries       []string
	AccountCount    *int
	PricePerAccount *int64
}

// UpdateCampaign edits a campaign's details. Only the owner or an admin
// may edit, and not once the campaign is terminal.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, actor store.User, req UpdateCampaignRequest) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.authorizeManage(ctx, campaignID, actor)
	if err != nil {
		return store.Campaign{}, err
	}
	if store.IsTerminalCampaignStatus(campaign.Status) {
		return store.Campaign{}, ErrCampaignTerminal
	}

	var countries *store.StringArray
	if req.Countries != nil {
		arr := store.StringArray(req.Countries)
		countries = &arr
	}
	updated, err := p.store.UpdateCampaign(ctx, campaignID, store.UpdateCampaignParams{
		Name:            req.Name,
		Description:     req.Description,
		Countries:       countries,
		AccountCount:    req.AccountCount,
		PricePerAccount: req.PricePerAccount,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign", err)
		return store.Campaign{}, err
	}
	return updated, nil
}

// SubmitPaymentProof attaches the owner's deposit proof to a pending campaign
func (p *CampaignProcessor) SubmitPaymentProof(ctx context.Context, campaignID uuid.UUID, actor store.User, proofURL string) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()})

	if _, err := p.authorizeManage(ctx, campaignID, actor); err != nil {
		return store.Campaign{}, err
	}

	campaign, err := p.store.SetCampaignPaymentProof(ctx, campaignID, proofURL)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		if errors.Is(err, store.ErrInvalidState) {
			return store.Campaign{}, ErrInvalidStatus
		}
		p.logger.Error(ctx, "failed to set payment proof", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign payment proof submitted")
	return campaign, nil
}

// ApprovePaymentProof confirms the deposit and activates the campaign.
// Admin only; the handler enforces the role.
func (p *CampaignProcessor) ApprovePaymentProof(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()})

	if _, err := p.store.ApproveCampaignPaymentProof(ctx, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		if errors.Is(err, store.ErrInvalidState) {
			return store.Campaign{}, ErrProofMissing
		}
		p.logger.Error(ctx, "failed to approve payment proof", err)
		return store.Campaign{}, err
	}

	campaign, err := p.store.TransitionCampaignStatus(ctx, campaignID, store.CampaignStatusPending, store.CampaignStatusActive)
	if err != nil {
		if errors.Is(err, store.ErrInvalidState) {
			// Deposit re-approved on a campaign that already left pending.
			return p.store.GetCampaignByID(ctx, campaignID)
		}
		p.logger.Error(ctx, "failed to activate campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign activated")
	return campaign, nil
}

// RejectCampaign declines a campaign that never funded its deposit,
// moving it from pending straight to cancelled. Admin only; the handler
// enforces the role.
func (p *CampaignProcessor) RejectCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.store.TransitionCampaignStatus(ctx, campaignID, store.CampaignStatusPending, store.CampaignStatusCancelled)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		if errors.Is(err, store.ErrInvalidState) {
			return store.Campaign{}, ErrInvalidStatus
		}
		p.logger.Error(ctx, "failed to reject campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign rejected")
	return campaign, nil
}

// PauseCampaign stops new applications on an active campaign
func (p *CampaignProcessor) PauseCampaign(ctx context.Context, campaignID uuid.UUID, actor store.User) (store.Campaign, error) {
	if _, err := p.authorizeManage(ctx, campaignID, actor); err != nil {
		return store.Campaign{}, err
	}

	campaign, err := p.store.TransitionCampaignStatus(ctx, campaignID, store.CampaignStatusActive, store.CampaignStatusInactive)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		if errors.Is(err, store.ErrInvalidState) {
			return store.Campaign{}, ErrInvalidStatus
		}
		p.logger.Error(ctx, "failed to pause campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

// ResumeCampaign reopens a paused campaign that still has free slots
func (p *CampaignProcessor) ResumeCampaign(ctx context.Context, campaignID uuid.UUID, actor store.User) (store.Campaign, error) {
	campaign, err := p.authorizeManage(ctx, campaignID, actor)
	if err != nil {
		return store.Campaign{}, err
	}
	if campaign.VerificationCount >= campaign.AccountCount {
		return store.Campaign{}, ErrInvalidStatus
	}

	resumed, err := p.store.TransitionCampaignStatus(ctx, campaignID, store.CampaignStatusInactive, store.CampaignStatusActive)
	if err != nil {
		if errors.Is(err, store.ErrInvalidState) {
			return store.Campaign{}, ErrInvalidStatus
		}
		p.logger.Error(ctx, "failed to resume campaign", err)
		return store.Campaign{}, err
	}
	return resumed, nil
}

// CancelCampaign cancels the campaign and notifies every open request
// thread. Blocked while any charge is unresolved.
func (p *CampaignProcessor) CancelCampaign(ctx context.Context, campaignID uuid.UUID, actor store.User) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()})

	if _, err := p.authorizeManage(ctx, campaignID, actor); err != nil {
		return store.Campaign{}, err
	}

	campaign, messages, err := p.store.CancelCampaign(ctx, campaignID, actor.ID, "This campaign has been cancelled. No further work should be submitted.")
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Campaign{}, ErrCampaignNotFound
		case errors.Is(err, store.ErrInvalidState):
			return store.Campaign{}, ErrCampaignTerminal
		case errors.Is(err, store.ErrConflict):
			return store.Campaign{}, ErrChargesInFlight
		}
		p.logger.Error(ctx, "failed to cancel campaign", err)
		return store.Campaign{}, err
	}

	for _, message := range messages {
		p.broadcast(ctx, message)
	}

	requests, err := p.store.ListJoinRequestsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list requests for cancellation notice", err)
	} else {
		sellerIDs := make([]uuid.UUID, 0, len(requests))
		for _, r := range requests {
			if r.Status == store.JoinRequestStatusAccepted {
				sellerIDs = append(sellerIDs, r.UserID)
			}
		}
		p.eventDispatcher.DispatchCampaignCancelled(ctx, campaignID, sellerIDs)
	}

	p.logger.Info(ctx, "campaign cancelled")
	return campaign, nil
}

// DeleteCampaign soft-deletes the campaign. Owner only.
func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, campaignID uuid.UUID, actor store.User) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()})

	if err := p.store.DeleteCampaign(ctx, campaignID, actor.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to delete campaign", err)
		return err
	}
	return nil
}

func (p *CampaignProcessor) broadcast(ctx context.Context, message store.Message) {
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

// authorizeManage loads the campaign and verifies the actor may manage it.
func (p *CampaignProcessor) authorizeManage(ctx context.Context, campaignID uuid.UUID, actor store.User) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	if !roles.CanManageCampaign(roles.Resolve(actor, campaign, nil)) {
		return store.Campaign{}, ErrUnauthorized
	}
	return campaign, nil
}
