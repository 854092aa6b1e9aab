package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/apierrors"
	authHandler "github.com/p2p-kyc/verify-sub000/internal/auth/handler"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/refunds/processor"
)

type Handler struct {
	processor processor.RefundProcessor
	logger    *observability.Logger
}

func New(processor processor.RefundProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// ResolveRefundRequest carries the admin's decision on a pending refund
type ResolveRefundRequest struct {
	Approved bool `json:"approved"`
}

// CompleteRefundRequest carries the payout proof for an approved refund
type CompleteRefundRequest struct {
	ProofURL string `json:"proof_url" binding:"required,url"`
}

// HandleRequestRefund handles POST /api/v1/campaigns/:campaign_id/refunds
func (h *Handler) HandleRequestRefund(c *gin.Context) {
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

	refund, err := h.processor.RequestRefund(ctx, campaignID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, refund)
}

// HandleResolveRefund handles POST /api/v1/admin/refunds/:refund_id/resolve
func (h *Handler) HandleResolveRefund(c *gin.Context) {
	ctx := c.Request.Context()

	refundID, err := uuid.Parse(c.Param("refund_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid refund id"))
		return
	}

	var req ResolveRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	refund, err := h.processor.Resolve(ctx, refundID, req.Approved)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, refund)
}

// HandleCompleteRefund handles POST /api/v1/admin/refunds/:refund_id/complete
func (h *Handler) HandleCompleteRefund(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	refundID, err := uuid.Parse(c.Param("refund_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid refund id"))
		return
	}

	var req CompleteRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.Complete(ctx, refundID, user, req.ProofURL)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleListForCampaign handles GET /api/v1/campaigns/:campaign_id/refunds
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

	refunds, err := h.processor.ListForCampaign(ctx, campaignID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"refunds": refunds})
}

// HandleListPending handles GET /api/v1/admin/refunds
func (h *Handler) HandleListPending(c *gin.Context) {
	ctx := c.Request.Context()

	refunds, err := h.processor.ListPending(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"refunds": refunds})
}
