package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/apierrors"
	authHandler "github.com/p2p-kyc/verify-sub000/internal/auth/handler"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/payments/processor"
)

type Handler struct {
	processor processor.PaymentProcessor
	logger    *observability.Logger
}

func New(processor processor.PaymentProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// CreateChargeRequest represents the HTTP request for raising a charge
type CreateChargeRequest struct {
	RequestID         uuid.UUID `json:"request_id" binding:"required"`
	AccountsRequested int       `json:"accounts_requested" binding:"required,gt=0"`
}

// RespondRequest carries the buyer's decision on a pending charge
type RespondRequest struct {
	Approved bool `json:"approved"`
}

// AppealRequest carries the seller's escalation of a rejected charge
type AppealRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=2000"`
}

// PaymentProofRequest carries the buyer's settlement proof
type PaymentProofRequest struct {
	ProofURL string `json:"proof_url" binding:"required,url"`
}

// HandleCreateCharge handles POST /api/v1/charges
func (h *Handler) HandleCreateCharge(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	var req CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.CreateCharge(ctx, user, processor.CreateChargeRequest{
		RequestID:         req.RequestID,
		AccountsRequested: req.AccountsRequested,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// HandleRespondToCharge handles POST /api/v1/charges/:charge_id/respond
func (h *Handler) HandleRespondToCharge(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	chargeID, err := uuid.Parse(c.Param("charge_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid charge id"))
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.RespondToCharge(ctx, chargeID, user, req.Approved)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleAppealCharge handles POST /api/v1/charges/:charge_id/appeal
func (h *Handler) HandleAppealCharge(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	chargeID, err := uuid.Parse(c.Param("charge_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid charge id"))
		return
	}

	var req AppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	charge, err := h.processor.AppealCharge(ctx, chargeID, user, req.Reason)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, charge)
}

// HandleResolveAppeal handles POST /api/v1/admin/charges/:charge_id/resolve-appeal
func (h *Handler) HandleResolveAppeal(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	chargeID, err := uuid.Parse(c.Param("charge_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid charge id"))
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.ResolveAppeal(ctx, chargeID, user, req.Approved)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleMarkChargePaid handles POST /api/v1/charges/:charge_id/paid
func (h *Handler) HandleMarkChargePaid(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	chargeID, err := uuid.Parse(c.Param("charge_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid charge id"))
		return
	}

	var req PaymentProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.MarkChargePaid(ctx, chargeID, user, req.ProofURL)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleCompleteCharge handles POST /api/v1/admin/charges/:charge_id/complete
func (h *Handler) HandleCompleteCharge(c *gin.Context) {
	ctx := c.Request.Context()

	chargeID, err := uuid.Parse(c.Param("charge_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid charge id"))
		return
	}

	charge, err := h.processor.CompleteCharge(ctx, chargeID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, charge)
}

// HandleListForCampaign handles GET /api/v1/campaigns/:campaign_id/charges
func (h *Handler) HandleListForCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign id"))
		return
	}

	charges, err := h.processor.ListForCampaign(ctx, campaignID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"charges": charges})
}

// HandleListOwn handles GET /api/v1/charges/mine
func (h *Handler) HandleListOwn(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	charges, err := h.processor.ListOwn(ctx, user.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"charges": charges})
}
