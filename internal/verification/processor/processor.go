package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

// VerificationStore defines the database operations required by VerificationProcessor
type VerificationStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetJoinRequestByCampaignAndUser(ctx context.Context, campaignID, userID uuid.UUID) (store.JoinRequest, error)
	SubmitVerification(ctx context.Context, campaignID, userID uuid.UUID, proofURL string) (store.Verification, error)
	ListVerificationsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Verification, error)
	ApproveVerification(ctx context.Context, verificationID, adminID uuid.UUID) (store.Verification, error)
	CompleteVerification(ctx context.Context, verificationID, adminID uuid.UUID) (store.Verification, error)
}

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrVerificationNotFound = errors.New("verification not found")
	ErrNotParticipant       = errors.New("no accepted join request on this campaign")
	ErrCampaignNotOpen      = errors.New("campaign is not accepting verifications")
	ErrCampaignFull         = errors.New("campaign has no verification slots left")
	ErrNotActionable        = errors.New("verification does not permit this action")
	ErrUnauthorized         = errors.New("unauthorized access to verification")
)

type VerificationProcessor struct {
	store  VerificationStore
	logger *observability.Logger
}

func New(store VerificationStore, logger *observability.Logger) VerificationProcessor {
	return VerificationProcessor{
		store:  store,
		logger: logger,
	}
}

// Submit records an account proof from a seller with an accepted join
// request. The capacity check runs atomically in the store.
func (p *VerificationProcessor) Submit(ctx context.Context, campaignID uuid.UUID, actor store.User, proofURL string) (store.Verification, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "seller_id", Value: actor.ID.String()},
	)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Verification{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Verification{}, err
	}
	if campaign.Status != store.CampaignStatusActive && campaign.Status != store.CampaignStatusInactive {
		return store.Verification{}, ErrCampaignNotOpen
	}

	request, err := p.store.GetJoinRequestByCampaignAndUser(ctx, campaignID, actor.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Verification{}, ErrNotParticipant
		}
		p.logger.Error(ctx, "failed to get join request", err)
		return store.Verification{}, err
	}
	if request.Status != store.JoinRequestStatusAccepted {
		return store.Verification{}, ErrNotParticipant
	}

	verification, err := p.store.SubmitVerification(ctx, campaignID, actor.ID, proofURL)
	if err != nil {
		if errors.Is(err, store.ErrCapacityReached) {
			return store.Verification{}, ErrCampaignFull
		}
		p.logger.Error(ctx, "failed to submit verification", err)
		return store.Verification{}, err
	}

	p.logger.Info(ctx, "verification submitted")
	return verification, nil
}

// Approve accepts a pending verification. Admin only; the handler
// enforces the role.
func (p *VerificationProcessor) Approve(ctx context.Context, verificationID uuid.UUID, admin store.User) (store.Verification, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "verification_id", Value: verificationID.String()},
		observability.Field{Key: "admin_id", Value: admin.ID.String()},
	)

	verification, err := p.store.ApproveVerification(ctx, verificationID, admin.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Verification{}, ErrVerificationNotFound
		case errors.Is(err, store.ErrInvalidState):
			return store.Verification{}, ErrNotActionable
		}
		p.logger.Error(ctx, "failed to approve verification", err)
		return store.Verification{}, err
	}
	return verification, nil
}

// Complete marks an approved verification as paid out. Admin only; the
// handler enforces the role.
func (p *VerificationProcessor) Complete(ctx context.Context, verificationID uuid.UUID, admin store.User) (store.Verification, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "verification_id", Value: verificationID.String()},
		observability.Field{Key: "admin_id", Value: admin.ID.String()},
	)

	verification, err := p.store.CompleteVerification(ctx, verificationID, admin.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Verification{}, ErrVerificationNotFound
		case errors.Is(err, store.ErrInvalidState):
			return store.Verification{}, ErrNotActionable
		}
		p.logger.Error(ctx, "failed to complete verification", err)
		return store.Verification{}, err
	}
	return verification, nil
}

// ListForCampaign returns a campaign's verifications. Participants only;
// sellers see the list to track their own submissions.
func (p *VerificationProcessor) ListForCampaign(ctx context.Context, campaignID uuid.UUID, actor store.User) ([]store.Verification, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return nil, err
	}

	if campaign.OwnerID != actor.ID && actor.Role != store.UserRoleAdmin {
		request, err := p.store.GetJoinRequestByCampaignAndUser(ctx, campaignID, actor.ID)
		if err != nil || request.Status != store.JoinRequestStatusAccepted {
			return nil, ErrUnauthorized
		}
	}

	verifications, err := p.store.ListVerificationsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list verifications", err)
		return nil, err
	}
	return verifications, nil
}
