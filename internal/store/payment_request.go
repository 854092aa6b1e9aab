package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateChargeParams represents parameters for a seller raising a charge.
type CreateChargeParams struct {
	RequestID         uuid.UUID
	CampaignID        uuid.UUID
	SellerID          uuid.UUID
	BuyerID           uuid.UUID
	AccountsRequested int
}

// ChargeResult carries the rows touched by a charge-workflow transaction.
// Message is the workflow message the transaction posted to the request
// thread, for delivery to live subscribers.
type ChargeResult struct {
	PaymentRequest PaymentRequest
	Campaign       Campaign
	Message        Message
}

const paymentRequestColumns = `id, request_id, campaign_id, seller_id, buyer_id, amount, accounts_requested, price_per_account, currency, status, created_at, responded_at, appealed_at, appeal_resolved_at, appeal_resolved_by`

const sqlGetPaymentRequestByID = `
SELECT ` + paymentRequestColumns + `
FROM payment_requests
WHERE id = $1
`

// GetPaymentRequestByID retrieves a payment request by ID
func (s *Store) GetPaymentRequestByID(ctx context.Context, paymentRequestID uuid.UUID) (PaymentRequest, error) {
	var pr PaymentRequest
	err := s.db.GetContext(ctx, &pr, sqlGetPaymentRequestByID, paymentRequestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PaymentRequest{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get payment request by id", err)
		return PaymentRequest{}, fmt.Errorf("failed to get payment request by id: %w", err)
	}
	return pr, nil
}

const sqlListPaymentRequestsByCampaign = `
SELECT ` + paymentRequestColumns + `
FROM payment_requests
WHERE campaign_id = $1
ORDER BY created_at DESC
`

// ListPaymentRequestsByCampaign retrieves all charges for a campaign
func (s *Store) ListPaymentRequestsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]PaymentRequest, error) {
	var prs []PaymentRequest
	err := s.db.SelectContext(ctx, &prs, sqlListPaymentRequestsByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list payment requests by campaign", err)
		return nil, fmt.Errorf("failed to list payment requests by campaign: %w", err)
	}
	return prs, nil
}

const sqlListPaymentRequestsBySeller = `
SELECT ` + paymentRequestColumns + `
FROM payment_requests
WHERE seller_id = $1
ORDER BY created_at DESC
`

// ListPaymentRequestsBySeller retrieves all charges raised by a seller
func (s *Store) ListPaymentRequestsBySeller(ctx context.Context, sellerID uuid.UUID) ([]PaymentRequest, error) {
	var prs []PaymentRequest
	err := s.db.SelectContext(ctx, &prs, sqlListPaymentRequestsBySeller, sellerID)
	if err != nil {
		s.logger.Error(ctx, "failed to list payment requests by seller", err)
		return nil, fmt.Errorf("failed to list payment requests by seller: %w", err)
	}
	return prs, nil
}

const sqlSumChargedAccounts = `
SELECT COALESCE(SUM(COALESCE(accounts_requested, 1)), 0)
FROM payment_requests
WHERE campaign_id = $1 AND status IN ('approved', 'paid')
`

// SumChargedAccounts computes the charged-accounts tally: the sum of
// accounts_requested over approved and paid charges, counting one account
// for legacy rows that predate per-charge counts.
func (s *Store) SumChargedAccounts(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var total int
	err := s.db.GetContext(ctx, &total, sqlSumChargedAccounts, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to sum charged accounts", err)
		return 0, fmt.Errorf("failed to sum charged accounts: %w", err)
	}
	return total, nil
}

const sqlListCampaignIDsWithOpenCharges = `
SELECT DISTINCT campaign_id
FROM payment_requests
WHERE status IN ('pending', 'approved', 'appealed')
`

// ListCampaignIDsWithOpenCharges returns the campaigns with unresolved
// charges, the working set of the tally reconciliation job.
func (s *Store) ListCampaignIDsWithOpenCharges(ctx context.Context) ([]uuid.UUID, error) {
	var campaignIDs []uuid.UUID
	err := s.db.SelectContext(ctx, &campaignIDs, sqlListCampaignIDsWithOpenCharges)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns with open charges", err)
		return nil, fmt.Errorf("failed to list campaigns with open charges: %w", err)
	}
	return campaignIDs, nil
}

const sqlCountOpenChargesForRequest = `
SELECT COUNT(*) FROM payment_requests
WHERE request_id = $1 AND status IN ('pending', 'appealed')
`

const sqlInsertPaymentRequest = `
INSERT INTO payment_requests (request_id, campaign_id, seller_id, buyer_id, amount, accounts_requested, price_per_account, currency)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + paymentRequestColumns

const sqlSetCampaignStatus = `
UPDATE campaigns
SET status = $2,
    updated_at = CURRENT_TIMESTAMP,
    completed_at = CASE WHEN $2 = 'completed' THEN CURRENT_TIMESTAMP ELSE completed_at END
WHERE id = $1
RETURNING ` + campaignColumns

// CreateCharge raises a charge for verified accounts. The campaign row
// lock serializes concurrent charges; the deposit guard, the remaining-
// capacity check, the payment request insert, the charge message and the
// campaign flip to pending_payment commit as one transaction. A partial
// application would strand the campaign in pending_payment with no
// resolvable charge, so none of these writes may land alone.
func (s *Store) CreateCharge(ctx context.Context, params CreateChargeParams) (ChargeResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return ChargeResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var campaign Campaign
	if err := tx.GetContext(ctx, &campaign, sqlLockCampaign, params.CampaignID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ChargeResult{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to lock campaign", err)
		return ChargeResult{}, fmt.Errorf("failed to lock campaign: %w", err)
	}

	if campaign.PaymentStatus != CampaignPaymentStatusApproved {
		return ChargeResult{}, ErrInvalidState
	}
	if campaign.Status != CampaignStatusActive && campaign.Status != CampaignStatusInactive {
		return ChargeResult{}, ErrInvalidState
	}

	// A request thread carries at most one unresolved charge at a time.
	var openCharges int
	if err := tx.GetContext(ctx, &openCharges, sqlCountOpenChargesForRequest, params.RequestID); err != nil {
		s.logger.Error(ctx, "failed to count open charges", err)
		return ChargeResult{}, fmt.Errorf("failed to count open charges: %w", err)
	}
	if openCharges > 0 {
		return ChargeResult{}, ErrConflict
	}

	var charged int
	if err := tx.GetContext(ctx, &charged, sqlSumChargedAccounts, params.CampaignID); err != nil {
		s.logger.Error(ctx, "failed to sum charged accounts", err)
		return ChargeResult{}, fmt.Errorf("failed to sum charged accounts: %w", err)
	}
	if params.AccountsRequested < 1 || params.AccountsRequested > campaign.AccountCount-charged {
		return ChargeResult{}, ErrCapacityReached
	}

	amount := int64(params.AccountsRequested) * campaign.PricePerAccount

	var pr PaymentRequest
	if err := tx.GetContext(ctx, &pr, sqlInsertPaymentRequest,
		params.RequestID,
		params.CampaignID,
		params.SellerID,
		params.BuyerID,
		amount,
		params.AccountsRequested,
		campaign.PricePerAccount,
		CurrencyUSDT); err != nil {
		s.logger.Error(ctx, "failed to insert payment request", err)
		return ChargeResult{}, fmt.Errorf("failed to insert payment request: %w", err)
	}

	message, err := insertMessageTx(ctx, tx, CreateMessageParams{
		RequestID:        params.RequestID,
		UserID:           params.SellerID,
		Type:             MessageTypeCharge,
		PaymentRequestID: &pr.ID,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to post charge message", err)
		return ChargeResult{}, fmt.Errorf("failed to post charge message: %w", err)
	}

	if err := tx.GetContext(ctx, &campaign, sqlSetCampaignStatus, params.CampaignID, CampaignStatusPendingPayment); err != nil {
		s.logger.Error(ctx, "failed to flip campaign to pending_payment", err)
		return ChargeResult{}, fmt.Errorf("failed to flip campaign to pending_payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit charge", err)
		return ChargeResult{}, fmt.Errorf("failed to commit charge: %w", err)
	}

	return ChargeResult{PaymentRequest: pr, Campaign: campaign, Message: message}, nil
}

const sqlRespondToCharge = `
UPDATE payment_requests
SET status = $2, responded_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING ` + paymentRequestColumns

// RespondToCharge records the buyer's decision on a pending charge. The
// status write, the response message and the campaign status move are one
// transaction.
func (s *Store) RespondToCharge(ctx context.Context, paymentRequestID uuid.UUID, approved bool) (ChargeResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return ChargeResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	newStatus := PaymentRequestStatusRejected
	messageType := MessageTypePaymentRejected
	campaignStatus := CampaignStatusActive
	if approved {
		newStatus = PaymentRequestStatusApproved
		messageType = MessageTypePaymentResponse
		campaignStatus = CampaignStatusProcessingPayment
	}

	var pr PaymentRequest
	if err := tx.GetContext(ctx, &pr, sqlRespondToCharge, paymentRequestID, newStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetPaymentRequestByID(ctx, paymentRequestID); errors.Is(getErr, ErrNotFound) {
				return ChargeResult{}, ErrNotFound
			}
			return ChargeResult{}, ErrInvalidState
		}
		s.logger.Error(ctx, "failed to respond to charge", err)
		return ChargeResult{}, fmt.Errorf("failed to respond to charge: %w", err)
	}

	message, err := insertMessageTx(ctx, tx, CreateMessageParams{
		RequestID:        pr.RequestID,
		UserID:           pr.BuyerID,
		Type:             messageType,
		PaymentRequestID: &pr.ID,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to post charge response message", err)
		return ChargeResult{}, fmt.Errorf("failed to post charge response message: %w", err)
	}

	var campaign Campaign
	if err := tx.GetContext(ctx, &campaign, sqlSetCampaignStatus, pr.CampaignID, campaignStatus); err != nil {
		s.logger.Error(ctx, "failed to update campaign status", err)
		return ChargeResult{}, fmt.Errorf("failed to update campaign status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit charge response", err)
		return ChargeResult{}, fmt.Errorf("failed to commit charge response: %w", err)
	}

	return ChargeResult{PaymentRequest: pr, Campaign: campaign, Message: message}, nil
}

const sqlAppealCharge = `
UPDATE payment_requests
SET status = 'appealed', appealed_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'rejected' AND appealed_at IS NULL
RETURNING ` + paymentRequestColumns

// AppealCharge escalates a rejected charge to admin arbitration. Each
// charge can be appealed once. The appeal message posted to the thread
// is returned alongside the updated charge.
func (s *Store) AppealCharge(ctx context.Context, paymentRequestID uuid.UUID, reason string) (PaymentRequest, Message, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return PaymentRequest{}, Message{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var pr PaymentRequest
	if err := tx.GetContext(ctx, &pr, sqlAppealCharge, paymentRequestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetPaymentRequestByID(ctx, paymentRequestID); errors.Is(getErr, ErrNotFound) {
				return PaymentRequest{}, Message{}, ErrNotFound
			}
			return PaymentRequest{}, Message{}, ErrInvalidState
		}
		s.logger.Error(ctx, "failed to appeal charge", err)
		return PaymentRequest{}, Message{}, fmt.Errorf("failed to appeal charge: %w", err)
	}

	message, err := insertMessageTx(ctx, tx, CreateMessageParams{
		RequestID:        pr.RequestID,
		UserID:           pr.SellerID,
		Type:             MessageTypePaymentAppeal,
		Body:             &reason,
		PaymentRequestID: &pr.ID,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to post appeal message", err)
		return PaymentRequest{}, Message{}, fmt.Errorf("failed to post appeal message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit appeal", err)
		return PaymentRequest{}, Message{}, fmt.Errorf("failed to commit appeal: %w", err)
	}

	return pr, message, nil
}

const sqlResolveAppeal = `
UPDATE payment_requests
SET status = $2, appeal_resolved_at = CURRENT_TIMESTAMP, appeal_resolved_by = $3
WHERE id = $1 AND status = 'appealed'
RETURNING ` + paymentRequestColumns

// ResolveAppeal records the admin's arbitration of an appealed charge.
// The status write, the appeal_response message, the audit record and the
// campaign status move commit together. A second resolution attempt finds
// the row out of the appealed status and fails with ErrInvalidState.
func (s *Store) ResolveAppeal(ctx context.Context, paymentRequestID uuid.UUID, approved bool, adminID uuid.UUID) (ChargeResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return ChargeResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	newStatus := PaymentRequestStatusRejected
	campaignStatus := CampaignStatusActive
	result := "rejected"
	if approved {
		newStatus = PaymentRequestStatusApproved
		campaignStatus = CampaignStatusProcessingPayment
		result = "approved"
	}

	var pr PaymentRequest
	if err := tx.GetContext(ctx, &pr, sqlResolveAppeal, paymentRequestID, newStatus, adminID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetPaymentRequestByID(ctx, paymentRequestID); errors.Is(getErr, ErrNotFound) {
				return ChargeResult{}, ErrNotFound
			}
			return ChargeResult{}, ErrInvalidState
		}
		s.logger.Error(ctx, "failed to resolve appeal", err)
		return ChargeResult{}, fmt.Errorf("failed to resolve appeal: %w", err)
	}

	body := fmt.Sprintf("Appeal %s by arbitration", result)
	message, err := insertMessageTx(ctx, tx, CreateMessageParams{
		RequestID:        pr.RequestID,
		UserID:           adminID,
		Type:             MessageTypeAppealResponse,
		Body:             &body,
		PaymentRequestID: &pr.ID,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to post appeal response message", err)
		return ChargeResult{}, fmt.Errorf("failed to post appeal response message: %w", err)
	}

	if err := insertActivityEventTx(ctx, tx, CreateActivityEventParams{
		Type:        "appeal_resolved",
		Title:       "Payment appeal resolved",
		Description: fmt.Sprintf("Appeal on charge %s resolved as %s", pr.ID, result),
		ActorID:     &adminID,
	}); err != nil {
		s.logger.Error(ctx, "failed to record appeal resolution activity", err)
		return ChargeResult{}, fmt.Errorf("failed to record appeal resolution activity: %w", err)
	}

	var campaign Campaign
	if err := tx.GetContext(ctx, &campaign, sqlSetCampaignStatus, pr.CampaignID, campaignStatus); err != nil {
		s.logger.Error(ctx, "failed to update campaign status", err)
		return ChargeResult{}, fmt.Errorf("failed to update campaign status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit appeal resolution", err)
		return ChargeResult{}, fmt.Errorf("failed to commit appeal resolution: %w", err)
	}

	return ChargeResult{PaymentRequest: pr, Campaign: campaign, Message: message}, nil
}

const sqlMarkChargePaid = `
UPDATE payment_requests
SET status = 'paid'
WHERE id = $1 AND status = 'approved'
RETURNING ` + paymentRequestColumns

// MarkChargePaid records the buyer's settlement of an approved charge,
// attaching the payment proof to the thread and completing the campaign.
func (s *Store) MarkChargePaid(ctx context.Context, paymentRequestID uuid.UUID, proofURL string) (ChargeResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return ChargeResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var pr PaymentRequest
	if err := tx.GetContext(ctx, &pr, sqlMarkChargePaid, paymentRequestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetPaymentRequestByID(ctx, paymentRequestID); errors.Is(getErr, ErrNotFound) {
				return ChargeResult{}, ErrNotFound
			}
			return ChargeResult{}, ErrInvalidState
		}
		s.logger.Error(ctx, "failed to mark charge paid", err)
		return ChargeResult{}, fmt.Errorf("failed to mark charge paid: %w", err)
	}

	message, err := insertMessageTx(ctx, tx, CreateMessageParams{
		RequestID:        pr.RequestID,
		UserID:           pr.BuyerID,
		Type:             MessageTypePaymentProof,
		ImageURL:         &proofURL,
		PaymentRequestID: &pr.ID,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to post payment proof message", err)
		return ChargeResult{}, fmt.Errorf("failed to post payment proof message: %w", err)
	}

	// A paid charge covering the remaining capacity completes the
	// campaign; a partial one returns it to active for further charges.
	var campaign Campaign
	if err := tx.GetContext(ctx, &campaign, sqlLockCampaign, pr.CampaignID); err != nil {
		s.logger.Error(ctx, "failed to lock campaign", err)
		return ChargeResult{}, fmt.Errorf("failed to lock campaign: %w", err)
	}
	var charged int
	if err := tx.GetContext(ctx, &charged, sqlSumChargedAccounts, pr.CampaignID); err != nil {
		s.logger.Error(ctx, "failed to sum charged accounts", err)
		return ChargeResult{}, fmt.Errorf("failed to sum charged accounts: %w", err)
	}
	nextStatus := CampaignStatusActive
	if charged >= campaign.AccountCount {
		nextStatus = CampaignStatusCompleted
	}
	if err := tx.GetContext(ctx, &campaign, sqlSetCampaignStatus, pr.CampaignID, nextStatus); err != nil {
		s.logger.Error(ctx, "failed to update campaign status", err)
		return ChargeResult{}, fmt.Errorf("failed to update campaign status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit paid charge", err)
		return ChargeResult{}, fmt.Errorf("failed to commit paid charge: %w", err)
	}

	return ChargeResult{PaymentRequest: pr, Campaign: campaign, Message: message}, nil
}

const sqlCompleteCharge = `
UPDATE payment_requests
SET status = 'completed'
WHERE id = $1 AND status = 'approved'
RETURNING ` + paymentRequestColumns

// CompleteCharge settles an approved charge administratively, used when
// payment is released by arbitration rather than by the buyer.
func (s *Store) CompleteCharge(ctx context.Context, paymentRequestID uuid.UUID) (PaymentRequest, error) {
	var pr PaymentRequest
	err := s.db.GetContext(ctx, &pr, sqlCompleteCharge, paymentRequestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetPaymentRequestByID(ctx, paymentRequestID); errors.Is(getErr, ErrNotFound) {
				return PaymentRequest{}, ErrNotFound
			}
			return PaymentRequest{}, ErrInvalidState
		}
		s.logger.Error(ctx, "failed to complete charge", err)
		return PaymentRequest{}, fmt.Errorf("failed to complete charge: %w", err)
	}
	return pr, nil
}
