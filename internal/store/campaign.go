package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	OwnerID         uuid.UUID
	Name            string
	Description     string
	Countries       []string
	AccountCount    int
	PricePerAccount int64
}

// UpdateCampaignParams represents parameters for updating a campaign.
// Nil fields are left unchanged.
type UpdateCampaignParams struct {
	Name            *string
	Description     *string
	Countries       *StringArray
	AccountCount    *int
	PricePerAccount *int64
}

const campaignColumns = `id, owner_id, name, description, countries, account_count, price_per_account, total_price, verification_count, status, payment_proof_url, payment_status, created_at, updated_at, completed_at, cancelled_at, deleted_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (owner_id, name, description, countries, account_count, price_per_account, total_price)
VALUES ($1, $2, $3, $4, $5, $6, $5 * $6)
RETURNING ` + campaignColumns

// CreateCampaign creates a new campaign in pending status with
// total_price derived from capacity and unit price.
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.OwnerID,
		params.Name,
		params.Description,
		StringArray(params.Countries),
		params.AccountCount,
		params.PricePerAccount)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1 AND deleted_at IS NULL
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlListCampaignsByOwner = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE owner_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
`

// ListCampaignsByOwner retrieves all campaigns created by a buyer
func (s *Store) ListCampaignsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaignsByOwner, ownerID)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns by owner", err)
		return nil, fmt.Errorf("failed to list campaigns by owner: %w", err)
	}
	return campaigns, nil
}

const sqlListCampaignsByStatus = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE status = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
`

// ListCampaignsByStatus retrieves all campaigns in the given status.
// Sellers browse active campaigns; admins review pending ones.
func (s *Store) ListCampaignsByStatus(ctx context.Context, status string) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaignsByStatus, status)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns by status", err)
		return nil, fmt.Errorf("failed to list campaigns by status: %w", err)
	}
	return campaigns, nil
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    countries = COALESCE($4, countries),
    account_count = COALESCE($5, account_count),
    price_per_account = COALESCE($6, price_per_account),
    total_price = COALESCE($5, account_count) * COALESCE($6, price_per_account),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + campaignColumns

// UpdateCampaign updates a campaign's editable fields and keeps
// total_price consistent with capacity and unit price.
func (s *Store) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params UpdateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaign,
		campaignID,
		params.Name,
		params.Description,
		params.Countries,
		params.AccountCount,
		params.PricePerAccount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign", err)
		return Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

const sqlTransitionCampaignStatus = `
UPDATE campaigns
SET status = $3,
    updated_at = CURRENT_TIMESTAMP,
    completed_at = CASE WHEN $3 = 'completed' THEN CURRENT_TIMESTAMP ELSE completed_at END,
    cancelled_at = CASE WHEN $3 = 'cancelled' THEN CURRENT_TIMESTAMP ELSE cancelled_at END
WHERE id = $1 AND status = $2 AND deleted_at IS NULL
RETURNING ` + campaignColumns

// TransitionCampaignStatus moves a campaign from an expected status to a
// new one. Zero rows means the campaign either does not exist or raced
// into another status, reported as ErrInvalidState after existence check.
func (s *Store) TransitionCampaignStatus(ctx context.Context, campaignID uuid.UUID, fromStatus, toStatus string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlTransitionCampaignStatus, campaignID, fromStatus, toStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetCampaignByID(ctx, campaignID); errors.Is(getErr, ErrNotFound) {
				return Campaign{}, ErrNotFound
			}
			return Campaign{}, ErrInvalidState
		}
		s.logger.Error(ctx, "failed to transition campaign status", err)
		return Campaign{}, fmt.Errorf("failed to transition campaign status: %w", err)
	}
	return campaign, nil
}

const sqlSetCampaignPaymentProof = `
UPDATE campaigns
SET payment_proof_url = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + campaignColumns

// SetCampaignPaymentProof attaches the buyer's payment proof reference
func (s *Store) SetCampaignPaymentProof(ctx context.Context, campaignID uuid.UUID, proofURL string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlSetCampaignPaymentProof, campaignID, proofURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to set campaign payment proof", err)
		return Campaign{}, fmt.Errorf("failed to set campaign payment proof: %w", err)
	}
	return campaign, nil
}

const sqlApproveCampaignPaymentProof = `
UPDATE campaigns
SET payment_status = 'approved', updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND payment_status = 'pending' AND payment_proof_url IS NOT NULL AND deleted_at IS NULL
RETURNING ` + campaignColumns

// ApproveCampaignPaymentProof marks the buyer's deposit as verified.
// Charges can only be raised against campaigns with an approved deposit.
func (s *Store) ApproveCampaignPaymentProof(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlApproveCampaignPaymentProof, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetCampaignByID(ctx, campaignID); errors.Is(getErr, ErrNotFound) {
				return Campaign{}, ErrNotFound
			}
			return Campaign{}, ErrInvalidState
		}
		s.logger.Error(ctx, "failed to approve campaign payment proof", err)
		return Campaign{}, fmt.Errorf("failed to approve campaign payment proof: %w", err)
	}
	return campaign, nil
}

const sqlDeleteCampaign = `
UPDATE campaigns
SET deleted_at = CURRENT_TIMESTAMP
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL
`

// DeleteCampaign soft deletes a campaign, owner only
func (s *Store) DeleteCampaign(ctx context.Context, campaignID, ownerID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteCampaign, campaignID, ownerID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete campaign", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

const sqlLockCampaign = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1 AND deleted_at IS NULL
FOR UPDATE
`

const sqlCountInFlightCharges = `
SELECT COUNT(*) FROM payment_requests
WHERE campaign_id = $1 AND status IN ('pending', 'approved')
`

const sqlCancelCampaign = `
UPDATE campaigns
SET status = 'cancelled', cancelled_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + campaignColumns

const sqlOpenRequestIDsForCampaign = `
SELECT id FROM join_requests
WHERE campaign_id = $1 AND status IN ('pending', 'accepted')
`

// CancelCampaign cancels a campaign unless a charge is still in flight.
// The in-flight check, the status flip, the system messages to every open
// request thread and the audit record are a single transaction so a charge
// raised concurrently cannot slip past the guard. The posted system
// messages are returned for delivery to live thread subscribers.
func (s *Store) CancelCampaign(ctx context.Context, campaignID uuid.UUID, actorID uuid.UUID, systemMessage string) (Campaign, []Message, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Campaign{}, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var campaign Campaign
	if err := tx.GetContext(ctx, &campaign, sqlLockCampaign, campaignID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, nil, ErrNotFound
		}
		s.logger.Error(ctx, "failed to lock campaign", err)
		return Campaign{}, nil, fmt.Errorf("failed to lock campaign: %w", err)
	}

	if IsTerminalCampaignStatus(campaign.Status) {
		return Campaign{}, nil, ErrInvalidState
	}

	var inFlight int
	if err := tx.GetContext(ctx, &inFlight, sqlCountInFlightCharges, campaignID); err != nil {
		s.logger.Error(ctx, "failed to count in-flight charges", err)
		return Campaign{}, nil, fmt.Errorf("failed to count in-flight charges: %w", err)
	}
	if inFlight > 0 {
		return Campaign{}, nil, ErrConflict
	}

	if err := tx.GetContext(ctx, &campaign, sqlCancelCampaign, campaignID); err != nil {
		s.logger.Error(ctx, "failed to cancel campaign", err)
		return Campaign{}, nil, fmt.Errorf("failed to cancel campaign: %w", err)
	}

	var requestIDs []uuid.UUID
	if err := tx.SelectContext(ctx, &requestIDs, sqlOpenRequestIDsForCampaign, campaignID); err != nil {
		s.logger.Error(ctx, "failed to list open request threads", err)
		return Campaign{}, nil, fmt.Errorf("failed to list open request threads: %w", err)
	}
	messages := make([]Message, 0, len(requestIDs))
	for _, requestID := range requestIDs {
		message, err := insertMessageTx(ctx, tx, CreateMessageParams{
			RequestID: requestID,
			UserID:    actorID,
			Type:      MessageTypeSystem,
			Body:      &systemMessage,
		})
		if err != nil {
			s.logger.Error(ctx, "failed to post cancellation system message", err)
			return Campaign{}, nil, fmt.Errorf("failed to post cancellation system message: %w", err)
		}
		messages = append(messages, message)
	}

	if err := insertActivityEventTx(ctx, tx, CreateActivityEventParams{
		Type:        "campaign_cancelled",
		Title:       "Campaign cancelled",
		Description: fmt.Sprintf("Campaign %q was cancelled", campaign.Name),
		ActorID:     &actorID,
	}); err != nil {
		s.logger.Error(ctx, "failed to record cancellation activity", err)
		return Campaign{}, nil, fmt.Errorf("failed to record cancellation activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit cancellation", err)
		return Campaign{}, nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	return campaign, messages, nil
}
