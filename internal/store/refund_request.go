package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const refundRequestColumns = `id, campaign_id, buyer_id, request_id, amount, currency, status, proof_url, created_at, resolved_at, completed_at`

// CreateRefundRequestParams contains the parameters for opening a refund request
type CreateRefundRequestParams struct {
	CampaignID uuid.UUID
	BuyerID    uuid.UUID
	RequestID  *uuid.UUID
	Amount     int64
	Currency   string
}

const sqlInsertRefundRequest = `
INSERT INTO refund_requests (campaign_id, buyer_id, request_id, amount, currency)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + refundRequestColumns

// CreateRefundRequest opens a refund request against a campaign. The
// partial unique index on open refunds makes a second concurrent open
// request surface as ErrConflict.
func (s *Store) CreateRefundRequest(ctx context.Context, params CreateRefundRequestParams) (RefundRequest, error) {
	var refund RefundRequest
	err := s.db.GetContext(ctx, &refund, sqlInsertRefundRequest,
		params.CampaignID, params.BuyerID, params.RequestID, params.Amount, params.Currency)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return RefundRequest{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to create refund request", err)
		return RefundRequest{}, fmt.Errorf("failed to create refund request: %w", err)
	}
	return refund, nil
}

const sqlGetRefundRequestByID = `
SELECT ` + refundRequestColumns + `
FROM refund_requests
WHERE id = $1
`

// GetRefundRequestByID retrieves a refund request by ID
func (s *Store) GetRefundRequestByID(ctx context.Context, refundID uuid.UUID) (RefundRequest, error) {
	var refund RefundRequest
	err := s.db.GetContext(ctx, &refund, sqlGetRefundRequestByID, refundID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RefundRequest{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get refund request by id", err)
		return RefundRequest{}, fmt.Errorf("failed to get refund request by id: %w", err)
	}
	return refund, nil
}

const sqlListRefundRequestsByCampaign = `
SELECT ` + refundRequestColumns + `
FROM refund_requests
WHERE campaign_id = $1
ORDER BY created_at DESC
`

// ListRefundRequestsByCampaign retrieves all refund requests for a campaign
func (s *Store) ListRefundRequestsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]RefundRequest, error) {
	var refunds []RefundRequest
	err := s.db.SelectContext(ctx, &refunds, sqlListRefundRequestsByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list refund requests by campaign", err)
		return nil, fmt.Errorf("failed to list refund requests by campaign: %w", err)
	}
	return refunds, nil
}

const sqlListRefundRequestsByStatus = `
SELECT ` + refundRequestColumns + `
FROM refund_requests
WHERE status = $1
ORDER BY created_at ASC
`

// ListRefundRequestsByStatus retrieves refund requests in a given status,
// oldest first so the admin queue drains in order.
func (s *Store) ListRefundRequestsByStatus(ctx context.Context, status string) ([]RefundRequest, error) {
	var refunds []RefundRequest
	err := s.db.SelectContext(ctx, &refunds, sqlListRefundRequestsByStatus, status)
	if err != nil {
		s.logger.Error(ctx, "failed to list refund requests by status", err)
		return nil, fmt.Errorf("failed to list refund requests by status: %w", err)
	}
	return refunds, nil
}

const sqlResolveRefundRequest = `
UPDATE refund_requests
SET status = $2, resolved_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING ` + refundRequestColumns

// ResolveRefundRequest moves a pending refund request to approved or rejected
func (s *Store) ResolveRefundRequest(ctx context.Context, refundID uuid.UUID, approved bool) (RefundRequest, error) {
	status := RefundStatusRejected
	if approved {
		status = RefundStatusApproved
	}

	var refund RefundRequest
	err := s.db.GetContext(ctx, &refund, sqlResolveRefundRequest, refundID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetRefundRequestByID(ctx, refundID); errors.Is(getErr, ErrNotFound) {
				return RefundRequest{}, ErrNotFound
			}
			return RefundRequest{}, ErrInvalidState
		}
		s.logger.Error(ctx, "failed to resolve refund request", err)
		return RefundRequest{}, fmt.Errorf("failed to resolve refund request: %w", err)
	}
	return refund, nil
}

const sqlLockRefundRequest = `
SELECT ` + refundRequestColumns + `
FROM refund_requests
WHERE id = $1
FOR UPDATE
`

const sqlCompleteRefundRequest = `
UPDATE refund_requests
SET status = 'completed', proof_url = $2, completed_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'approved'
RETURNING ` + refundRequestColumns

const sqlForceCancelCampaign = `
UPDATE campaigns
SET status = 'cancelled', cancelled_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status NOT IN ('completed', 'cancelled')
RETURNING ` + campaignColumns

// CompleteRefundResult carries the rows touched by CompleteRefund.
// Message is the payout system message, nil when the refund has no
// thread to post into.
type CompleteRefundResult struct {
	Refund   RefundRequest
	Campaign Campaign
	Message  *Message
}

// CompleteRefund marks an approved refund as paid out and force-cancels
// the campaign it was raised against. The campaign cancellation and the
// system message in the buyer's thread commit with the refund write.
func (s *Store) CompleteRefund(ctx context.Context, refundID uuid.UUID, proofURL string, adminID uuid.UUID) (CompleteRefundResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return CompleteRefundResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var refund RefundRequest
	if err := tx.GetContext(ctx, &refund, sqlLockRefundRequest, refundID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CompleteRefundResult{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to lock refund request", err)
		return CompleteRefundResult{}, fmt.Errorf("failed to lock refund request: %w", err)
	}
	if refund.Status != RefundStatusApproved {
		return CompleteRefundResult{}, ErrInvalidState
	}

	if err := tx.GetContext(ctx, &refund, sqlCompleteRefundRequest, refundID, proofURL); err != nil {
		s.logger.Error(ctx, "failed to complete refund request", err)
		return CompleteRefundResult{}, fmt.Errorf("failed to complete refund request: %w", err)
	}

	var campaign Campaign
	if err := tx.GetContext(ctx, &campaign, sqlForceCancelCampaign, refund.CampaignID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Already terminal; the refund still completes.
			if err := tx.GetContext(ctx, &campaign, sqlGetCampaignByID, refund.CampaignID); err != nil {
				s.logger.Error(ctx, "failed to load campaign for refund", err)
				return CompleteRefundResult{}, fmt.Errorf("failed to load campaign for refund: %w", err)
			}
		} else {
			s.logger.Error(ctx, "failed to cancel campaign for refund", err)
			return CompleteRefundResult{}, fmt.Errorf("failed to cancel campaign for refund: %w", err)
		}
	}

	var posted *Message
	if refund.RequestID != nil {
		body := fmt.Sprintf("Refund of %d %s was paid out and the campaign %q was cancelled.", refund.Amount, refund.Currency, campaign.Name)
		message, err := insertMessageTx(ctx, tx, CreateMessageParams{
			RequestID: *refund.RequestID,
			UserID:    adminID,
			Type:      MessageTypeSystem,
			Body:      &body,
		})
		if err != nil {
			s.logger.Error(ctx, "failed to post refund system message", err)
			return CompleteRefundResult{}, fmt.Errorf("failed to post refund system message: %w", err)
		}
		posted = &message
	}

	if err := insertActivityEventTx(ctx, tx, CreateActivityEventParams{
		Type:        "refund_completed",
		Title:       "Refund completed",
		Description: fmt.Sprintf("Refund %s of %d %s completed for campaign %q", refund.ID, refund.Amount, refund.Currency, campaign.Name),
		ActorID:     &adminID,
	}); err != nil {
		s.logger.Error(ctx, "failed to record refund activity", err)
		return CompleteRefundResult{}, fmt.Errorf("failed to record refund activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit refund completion", err)
		return CompleteRefundResult{}, fmt.Errorf("failed to commit refund completion: %w", err)
	}

	return CompleteRefundResult{Refund: refund, Campaign: campaign, Message: posted}, nil
}
