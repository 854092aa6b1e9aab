package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

const joinRequestColumns = `id, campaign_id, user_id, status, created_at, updated_at`

const sqlCreateJoinRequest = `
INSERT INTO join_requests (campaign_id, user_id)
VALUES ($1, $2)
RETURNING ` + joinRequestColumns

// CreateJoinRequest creates a pending join request. The unique index on
// (campaign_id, user_id) is the last line of defense against duplicate
// submissions racing past the processor's pre-check.
func (s *Store) CreateJoinRequest(ctx context.Context, campaignID, userID uuid.UUID) (JoinRequest, error) {
	var request JoinRequest
	err := s.db.GetContext(ctx, &request, sqlCreateJoinRequest, campaignID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return JoinRequest{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to create join request", err)
		return JoinRequest{}, fmt.Errorf("failed to create join request: %w", err)
	}
	return request, nil
}

const sqlGetJoinRequestByID = `
SELECT ` + joinRequestColumns + `
FROM join_requests
WHERE id = $1
`

// GetJoinRequestByID retrieves a join request by ID
func (s *Store) GetJoinRequestByID(ctx context.Context, requestID uuid.UUID) (JoinRequest, error) {
	var request JoinRequest
	err := s.db.GetContext(ctx, &request, sqlGetJoinRequestByID, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JoinRequest{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get join request by id", err)
		return JoinRequest{}, fmt.Errorf("failed to get join request by id: %w", err)
	}
	return request, nil
}

const sqlGetJoinRequestByCampaignAndUser = `
SELECT ` + joinRequestColumns + `
FROM join_requests
WHERE campaign_id = $1 AND user_id = $2
`

// GetJoinRequestByCampaignAndUser retrieves the unique request for a
// (campaign, applicant) pair
func (s *Store) GetJoinRequestByCampaignAndUser(ctx context.Context, campaignID, userID uuid.UUID) (JoinRequest, error) {
	var request JoinRequest
	err := s.db.GetContext(ctx, &request, sqlGetJoinRequestByCampaignAndUser, campaignID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JoinRequest{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get join request by campaign and user", err)
		return JoinRequest{}, fmt.Errorf("failed to get join request by campaign and user: %w", err)
	}
	return request, nil
}

const sqlListJoinRequestsByCampaign = `
SELECT ` + joinRequestColumns + `
FROM join_requests
WHERE campaign_id = $1
ORDER BY created_at ASC
`

// ListJoinRequestsByCampaign retrieves all requests for a campaign
func (s *Store) ListJoinRequestsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]JoinRequest, error) {
	var requests []JoinRequest
	err := s.db.SelectContext(ctx, &requests, sqlListJoinRequestsByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list join requests by campaign", err)
		return nil, fmt.Errorf("failed to list join requests by campaign: %w", err)
	}
	return requests, nil
}

const sqlListJoinRequestsByUser = `
SELECT ` + joinRequestColumns + `
FROM join_requests
WHERE user_id = $1
ORDER BY created_at DESC
`

// ListJoinRequestsByUser retrieves all requests submitted by a seller
func (s *Store) ListJoinRequestsByUser(ctx context.Context, userID uuid.UUID) ([]JoinRequest, error) {
	var requests []JoinRequest
	err := s.db.SelectContext(ctx, &requests, sqlListJoinRequestsByUser, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to list join requests by user", err)
		return nil, fmt.Errorf("failed to list join requests by user: %w", err)
	}
	return requests, nil
}

const sqlRejectJoinRequest = `
UPDATE join_requests
SET status = 'rejected', updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING ` + joinRequestColumns

// RejectJoinRequest rejects a pending join request
func (s *Store) RejectJoinRequest(ctx context.Context, requestID uuid.UUID) (JoinRequest, error) {
	var request JoinRequest
	err := s.db.GetContext(ctx, &request, sqlRejectJoinRequest, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := s.GetJoinRequestByID(ctx, requestID); errors.Is(getErr, ErrNotFound) {
				return JoinRequest{}, ErrNotFound
			}
			return JoinRequest{}, ErrInvalidState
		}
		s.logger.Error(ctx, "failed to reject join request", err)
		return JoinRequest{}, fmt.Errorf("failed to reject join request: %w", err)
	}
	return request, nil
}

const sqlLockJoinRequest = `
SELECT ` + joinRequestColumns + `
FROM join_requests
WHERE id = $1
FOR UPDATE
`

const sqlAcceptJoinRequest = `
UPDATE join_requests
SET status = 'accepted', updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + joinRequestColumns

const sqlIncrementVerificationCount = `
UPDATE campaigns
SET verification_count = verification_count + 1,
    status = CASE WHEN verification_count + 1 >= account_count THEN 'inactive' ELSE status END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + campaignColumns

// AcceptJoinRequestResult carries both rows touched by an accept.
type AcceptJoinRequestResult struct {
	Request  JoinRequest
	Campaign Campaign
}

// AcceptJoinRequest accepts a pending request and claims one verifier
// slot. The campaign row lock serializes concurrent accepts: the
// capacity re-check, the counter increment and the flip to inactive at
// capacity all happen inside one transaction, so the last slot can only
// be granted once.
func (s *Store) AcceptJoinRequest(ctx context.Context, requestID uuid.UUID) (AcceptJoinRequestResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return AcceptJoinRequestResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var request JoinRequest
	if err := tx.GetContext(ctx, &request, sqlLockJoinRequest, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AcceptJoinRequestResult{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to lock join request", err)
		return AcceptJoinRequestResult{}, fmt.Errorf("failed to lock join request: %w", err)
	}

	if request.Status != JoinRequestStatusPending {
		return AcceptJoinRequestResult{}, ErrInvalidState
	}

	var campaign Campaign
	if err := tx.GetContext(ctx, &campaign, sqlLockCampaign, request.CampaignID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AcceptJoinRequestResult{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to lock campaign", err)
		return AcceptJoinRequestResult{}, fmt.Errorf("failed to lock campaign: %w", err)
	}

	if campaign.VerificationCount >= campaign.AccountCount {
		return AcceptJoinRequestResult{}, ErrCapacityReached
	}

	if err := tx.GetContext(ctx, &request, sqlAcceptJoinRequest, requestID); err != nil {
		s.logger.Error(ctx, "failed to accept join request", err)
		return AcceptJoinRequestResult{}, fmt.Errorf("failed to accept join request: %w", err)
	}

	if err := tx.GetContext(ctx, &campaign, sqlIncrementVerificationCount, request.CampaignID); err != nil {
		s.logger.Error(ctx, "failed to increment verification count", err)
		return AcceptJoinRequestResult{}, fmt.Errorf("failed to increment verification count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit accept", err)
		return AcceptJoinRequestResult{}, fmt.Errorf("failed to commit accept: %w", err)
	}

	return AcceptJoinRequestResult{Request: request, Campaign: campaign}, nil
}
