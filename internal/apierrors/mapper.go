package apierrors

import (
	"errors"
	"strings"

	authProcessor "github.com/p2p-kyc/verify-sub000/internal/auth/processor"
	campaignProcessor "github.com/p2p-kyc/verify-sub000/internal/campaign/processor"
	messagingProcessor "github.com/p2p-kyc/verify-sub000/internal/messaging/processor"
	paymentsProcessor "github.com/p2p-kyc/verify-sub000/internal/payments/processor"
	refundsProcessor "github.com/p2p-kyc/verify-sub000/internal/refunds/processor"
	requestsProcessor "github.com/p2p-kyc/verify-sub000/internal/requests/processor"
	"github.com/p2p-kyc/verify-sub000/internal/store"
	verificationProcessor "github.com/p2p-kyc/verify-sub000/internal/verification/processor"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map auth processor errors
	case errors.Is(err, authProcessor.ErrInvalidToken),
		errors.Is(err, authProcessor.ErrParseToken):
		return Unauthorized("Invalid access token")

	case errors.Is(err, authProcessor.ErrExpiredToken):
		return Unauthorized("Access token expired")

	// Map campaign processor errors
	case errors.Is(err, campaignProcessor.ErrCampaignNotFound):
		return NotFound("Campaign not found")

	case errors.Is(err, campaignProcessor.ErrUnauthorized):
		return Forbidden("You do not have access to this campaign")

	case errors.Is(err, campaignProcessor.ErrCampaignTerminal):
		return Conflict(CodeInvalidState, "Campaign has completed or been cancelled")

	case errors.Is(err, campaignProcessor.ErrInvalidStatus):
		return Conflict(CodeInvalidState, "Campaign status does not permit this operation")

	case errors.Is(err, campaignProcessor.ErrChargesInFlight):
		return Conflict(CodeConflict, "Campaign has unresolved charges")

	case errors.Is(err, campaignProcessor.ErrProofMissing):
		return Conflict(CodeInvalidState, "Deposit proof has not been submitted")

	// Map join request processor errors
	case errors.Is(err, requestsProcessor.ErrCampaignNotFound):
		return NotFound("Campaign not found")

	case errors.Is(err, requestsProcessor.ErrRequestNotFound):
		return NotFound("Join request not found")

	case errors.Is(err, requestsProcessor.ErrCampaignNotOpen):
		return Conflict(CodeInvalidState, "Campaign is not accepting applications")

	case errors.Is(err, requestsProcessor.ErrOwnCampaign):
		return Forbidden("You cannot apply to your own campaign")

	case errors.Is(err, requestsProcessor.ErrAlreadyApplied):
		return Conflict(CodeConflict, "You have already applied to this campaign")

	case errors.Is(err, requestsProcessor.ErrCampaignFull):
		return Conflict(CodeCapacityExceeded, "Campaign has no free slots")

	case errors.Is(err, requestsProcessor.ErrRequestNotPending):
		return Conflict(CodeInvalidState, "Join request has already been decided")

	case errors.Is(err, requestsProcessor.ErrUnauthorized):
		return Forbidden("You do not have access to this join request")

	// Map payment processor errors
	case errors.Is(err, paymentsProcessor.ErrChargeNotFound):
		return NotFound("Charge not found")

	case errors.Is(err, paymentsProcessor.ErrRequestNotFound):
		return NotFound("Join request not found")

	case errors.Is(err, paymentsProcessor.ErrCampaignNotFound):
		return NotFound("Campaign not found")

	case errors.Is(err, paymentsProcessor.ErrUnauthorized):
		return Forbidden("You do not have access to this charge")

	case errors.Is(err, paymentsProcessor.ErrRequestNotAccepted):
		return Conflict(CodeInvalidState, "Join request has not been accepted")

	case errors.Is(err, paymentsProcessor.ErrChargeOpen):
		return Conflict(CodeConflict, "Request already has an unresolved charge")

	case errors.Is(err, paymentsProcessor.ErrChargeOutOfRange):
		return Conflict(CodeCapacityExceeded, "Requested accounts exceed remaining campaign capacity")

	case errors.Is(err, paymentsProcessor.ErrCampaignNotChargeable):
		return Conflict(CodeInvalidState, "Campaign cannot be charged in its current state")

	case errors.Is(err, paymentsProcessor.ErrChargeNotActionable):
		return Conflict(CodeInvalidState, "Charge does not permit this action")

	// Map verification processor errors
	case errors.Is(err, verificationProcessor.ErrCampaignNotFound):
		return NotFound("Campaign not found")

	case errors.Is(err, verificationProcessor.ErrVerificationNotFound):
		return NotFound("Verification not found")

	case errors.Is(err, verificationProcessor.ErrNotParticipant):
		return Forbidden("You have no accepted join request on this campaign")

	case errors.Is(err, verificationProcessor.ErrCampaignNotOpen):
		return Conflict(CodeInvalidState, "Campaign is not accepting verifications")

	case errors.Is(err, verificationProcessor.ErrCampaignFull):
		return Conflict(CodeCapacityExceeded, "Campaign has no verification slots left")

	case errors.Is(err, verificationProcessor.ErrNotActionable):
		return Conflict(CodeInvalidState, "Verification does not permit this action")

	case errors.Is(err, verificationProcessor.ErrUnauthorized):
		return Forbidden("You do not have access to this verification")

	// Map refund processor errors
	case errors.Is(err, refundsProcessor.ErrCampaignNotFound):
		return NotFound("Campaign not found")

	case errors.Is(err, refundsProcessor.ErrRefundNotFound):
		return NotFound("Refund request not found")

	case errors.Is(err, refundsProcessor.ErrUnauthorized):
		return Forbidden("You do not have access to this refund request")

	case errors.Is(err, refundsProcessor.ErrDepositNotFunded):
		return Conflict(CodeInvalidState, "Campaign deposit was never approved")

	case errors.Is(err, refundsProcessor.ErrCampaignCompleted):
		return Conflict(CodeInvalidState, "Completed campaigns cannot be refunded")

	case errors.Is(err, refundsProcessor.ErrRefundOpen):
		return Conflict(CodeConflict, "Campaign already has an open refund request")

	case errors.Is(err, refundsProcessor.ErrNotActionable):
		return Conflict(CodeInvalidState, "Refund request does not permit this action")

	// Map messaging processor errors
	case errors.Is(err, messagingProcessor.ErrRequestNotFound):
		return NotFound("Join request not found")

	case errors.Is(err, messagingProcessor.ErrCampaignNotFound):
		return NotFound("Campaign not found")

	case errors.Is(err, messagingProcessor.ErrUnauthorized):
		return Forbidden("You do not have access to this thread")

	case errors.Is(err, messagingProcessor.ErrEmptyMessage):
		return BadRequest(CodeInvalidInput, "Message has no content")

	// Map store errors that escape without a processor translation
	case errors.Is(err, store.ErrNotFound):
		return NotFound("Resource not found")

	case errors.Is(err, store.ErrInvalidState):
		return Conflict(CodeInvalidState, "Resource state does not permit this operation")

	case errors.Is(err, store.ErrConflict):
		return Conflict(CodeConflict, "Conflicting operation in progress")

	case errors.Is(err, store.ErrCapacityReached):
		return Conflict(CodeCapacityExceeded, "Campaign capacity reached")

	// Check for common external service errors by message content
	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	// Email service errors (Resend)
	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// Default: Unknown error - return sanitized 500
	return InternalError(err)
}
