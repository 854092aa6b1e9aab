package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const verificationColumns = `id, campaign_id, user_id, status, proof_url, created_at, approved_at, completed_at`

const sqlInsertVerification = `
INSERT INTO verifications (campaign_id, user_id, proof_url)
VALUES ($1, $2, $3)
RETURNING ` + verificationColumns

const sqlCountVerificationsByCampaign = `
SELECT COUNT(*)
FROM verifications
WHERE campaign_id = $1
`

// SubmitVerification records an account proof. Slot reservations are
// claimed at accept time and stay untouched here; what the campaign row
// lock serializes is the proof count, so no more proofs than accounts
// can ever land, even when a fully-booked campaign is auto-paused.
func (s *Store) SubmitVerification(ctx context.Context, campaignID, userID uuid.UUID, proofURL string) (Verification, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Verification{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var campaign Campaign
	if err := tx.GetContext(ctx, &campaign, sqlLockCampaign, campaignID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Verification{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to lock campaign", err)
		return Verification{}, fmt.Errorf("failed to lock campaign: %w", err)
	}

	var submitted int
	if err := tx.GetContext(ctx, &submitted, sqlCountVerificationsByCampaign, campaignID); err != nil {
		s.logger.Error(ctx, "failed to count verifications", err)
		return Verification{}, fmt.Errorf("failed to count verifications: %w", err)
	}
	if submitted >= campaign.AccountCount {
		return Verification{}, ErrCapacityReached
	}

	var verification Verification
	if err := tx.GetContext(ctx, &verification, sqlInsertVerification, campaignID, userID, proofURL); err != nil {
		s.logger.Error(ctx, "failed to insert verification", err)
		return Verification{}, fmt.Errorf("failed to insert verification: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit verification", err)
		return Verification{}, fmt.Errorf("failed to commit verification: %w", err)
	}

	return verification, nil
}

const sqlGetVerificationByID = `
SELECT ` + verificationColumns + `
FROM verifications
WHERE id = $1
`

// GetVerificationByID retrieves a verification by ID
func (s *Store) GetVerificationByID(ctx context.Context, verificationID uuid.UUID) (Verification, error) {
	var verification Verification
	err := s.db.GetContext(ctx, &verification, sqlGetVerificationByID, verificationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Verification{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get verification by id", err)
		return Verification{}, fmt.Errorf("failed to get verification by id: %w", err)
	}
	return verification, nil
}

const sqlListVerificationsByCampaign = `
SELECT ` + verificationColumns + `
FROM verifications
WHERE campaign_id = $1
ORDER BY created_at ASC
`

// ListVerificationsByCampaign retrieves all verifications for a campaign
func (s *Store) ListVerificationsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Verification, error) {
	var verifications []Verification
	err := s.db.SelectContext(ctx, &verifications, sqlListVerificationsByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list verifications by campaign", err)
		return nil, fmt.Errorf("failed to list verifications by campaign: %w", err)
	}
	return verifications, nil
}

const sqlApproveVerification = `
UPDATE verifications
SET status = 'approved', approved_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING ` + verificationColumns

// ApproveVerification moves a pending verification to approved and
// records the decision in the activity feed, as one transaction.
func (s *Store) ApproveVerification(ctx context.Context, verificationID, adminID uuid.UUID) (Verification, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Verification{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var verification Verification
	if err := tx.GetContext(ctx, &verification, sqlApproveVerification, verificationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetVerificationByID(ctx, verificationID); errors.Is(getErr, ErrNotFound) {
				return Verification{}, ErrNotFound
			}
			return Verification{}, ErrInvalidState
		}
		s.logger.Error(ctx, "failed to approve verification", err)
		return Verification{}, fmt.Errorf("failed to approve verification: %w", err)
	}

	if err := insertActivityEventTx(ctx, tx, CreateActivityEventParams{
		Type:        "verification_approved",
		Title:       "Verification approved",
		Description: fmt.Sprintf("Verification %s was approved", verification.ID),
		ActorID:     &adminID,
	}); err != nil {
		s.logger.Error(ctx, "failed to record verification approval activity", err)
		return Verification{}, fmt.Errorf("failed to record verification approval activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit verification approval", err)
		return Verification{}, fmt.Errorf("failed to commit verification approval: %w", err)
	}
	return verification, nil
}

const sqlCompleteVerification = `
UPDATE verifications
SET status = 'completed', completed_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'approved'
RETURNING ` + verificationColumns

// CompleteVerification moves an approved verification to completed,
// recording that payment for the account was released. The payout is
// logged to the activity feed in the same transaction.
func (s *Store) CompleteVerification(ctx context.Context, verificationID, adminID uuid.UUID) (Verification, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Verification{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var verification Verification
	if err := tx.GetContext(ctx, &verification, sqlCompleteVerification, verificationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetVerificationByID(ctx, verificationID); errors.Is(getErr, ErrNotFound) {
				return Verification{}, ErrNotFound
			}
			return Verification{}, ErrInvalidState
		}
		s.logger.Error(ctx, "failed to complete verification", err)
		return Verification{}, fmt.Errorf("failed to complete verification: %w", err)
	}

	if err := insertActivityEventTx(ctx, tx, CreateActivityEventParams{
		Type:        "verification_completed",
		Title:       "Verification payment released",
		Description: fmt.Sprintf("Payment for verification %s was released", verification.ID),
		ActorID:     &adminID,
	}); err != nil {
		s.logger.Error(ctx, "failed to record verification completion activity", err)
		return Verification{}, fmt.Errorf("failed to record verification completion activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit verification completion", err)
		return Verification{}, fmt.Errorf("failed to commit verification completion: %w", err)
	}
	return verification, nil
}
