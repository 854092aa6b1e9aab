package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/apierrors"
	authHandler "github.com/p2p-kyc/verify-sub000/internal/auth/handler"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/verification/processor"
)

type Handler struct {
	processor processor.VerificationProcessor
	logger    *observability.Logger
}

func New(processor processor.VerificationProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// SubmitVerificationRequest carries the seller's account proof
type SubmitVerificationRequest struct {
	ProofURL string `json:"proof_url" binding:"required,url"`
}

// HandleSubmit handles POST /api/v1/campaigns/:campaign_id/verifications
func (h *Handler) HandleSubmit(c *gin.Context) {
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

	var req SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	verification, err := h.processor.Submit(ctx, campaignID, user, req.ProofURL)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, verification)
}

// HandleApprove handles POST /api/v1/admin/verifications/:verification_id/approve
func (h *Handler) HandleApprove(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	verificationID, err := uuid.Parse(c.Param("verification_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid verification id"))
		return
	}

	verification, err := h.processor.Approve(ctx, verificationID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, verification)
}

// HandleComplete handles POST /api/v1/admin/verifications/:verification_id/complete
func (h *Handler) HandleComplete(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	verificationID, err := uuid.Parse(c.Param("verification_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid verification id"))
		return
	}

	verification, err := h.processor.Complete(ctx, verificationID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, verification)
}

// HandleListForCampaign handles GET /api/v1/campaigns/:campaign_id/verifications
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

	verifications, err := h.processor.ListForCampaign(ctx, campaignID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verifications": verifications})
}
