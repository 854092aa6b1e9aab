package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/apierrors"
	authHandler "github.com/p2p-kyc/verify-sub000/internal/auth/handler"
	"github.com/p2p-kyc/verify-sub000/internal/campaign/processor"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name            string   `json:"name" binding:"required,min=1,max=200"`
	Description     string   `json:"description" binding:"max=5000"`
	Countries       []string `json:"countries" binding:"required,min=1,dive,len=2"`
	AccountCount    int      `json:"account_count" binding:"required,gt=0"`
	PricePerAccount int64    `json:"price_per_account" binding:"required,gt=0"`
}

// UpdateCampaignRequest represents the HTTP request for editing a campaign
type UpdateCampaignRequest struct {
	Name            *string  `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Description     *string  `json:"description,omitempty" binding:"omitempty,max=5000"`
	Countries       []string `json:"countries,omitempty" binding:"omitempty,min=1,dive,len=2"`
	AccountCount    *int     `json:"account_count,omitempty" binding:"omitempty,gt=0"`
	PricePerAccount *int64   `json:"price_per_account,omitempty" binding:"omitempty,gt=0"`
}

// SubmitProofRequest carries the deposit proof URL
type SubmitProofRequest struct {
	ProofURL string `json:"proof_url" binding:"required,url"`
}

// HandleCreateCampaign handles POST /api/v1/campaigns
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, user.ID, processor.CreateCampaignRequest{
		Name:            req.Name,
		Description:     req.Description,
		Countries:       req.Countries,
		AccountCount:    req.AccountCount,
		PricePerAccount: req.PricePerAccount,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// HandleGetCampaign handles GET /api/v1/campaigns/:campaign_id
func (h *Handler) HandleGetCampaign(c *gin.Context) {
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

	view, err := h.processor.GetCampaign(ctx, campaignID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleListOwnCampaigns handles GET /api/v1/campaigns/mine
func (h *Handler) HandleListOwnCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	campaigns, err := h.processor.ListOwnCampaigns(ctx, user.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleBrowseCampaigns handles GET /api/v1/campaigns
func (h *Handler) HandleBrowseCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	campaigns, err := h.processor.BrowseCampaigns(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleUpdateCampaign handles PATCH /api/v1/campaigns/:campaign_id
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
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

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaign(ctx, campaignID, user, processor.UpdateCampaignRequest{
		Name:            req.Name,
		Description:     req.Description,
		Countries:       req.Countries,
		AccountCount:    req.AccountCount,
		PricePerAccount: req.PricePerAccount,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// HandleSubmitPaymentProof handles POST /api/v1/campaigns/:campaign_id/payment-proof
func (h *Handler) HandleSubmitPaymentProof(c *gin.Context) {
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

	var req SubmitProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.SubmitPaymentProof(ctx, campaignID, user, req.ProofURL)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// HandleApprovePaymentProof handles POST /api/v1/admin/campaigns/:campaign_id/approve-proof
func (h *Handler) HandleApprovePaymentProof(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign id"))
		return
	}

	campaign, err := h.processor.ApprovePaymentProof(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// HandleRejectCampaign handles POST /api/v1/admin/campaigns/:campaign_id/reject
func (h *Handler) HandleRejectCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign id"))
		return
	}

	campaign, err := h.processor.RejectCampaign(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// HandlePauseCampaign handles POST /api/v1/campaigns/:campaign_id/pause
func (h *Handler) HandlePauseCampaign(c *gin.Context) {
	h.transition(c, h.processor.PauseCampaign)
}

// HandleResumeCampaign handles POST /api/v1/campaigns/:campaign_id/resume
func (h *Handler) HandleResumeCampaign(c *gin.Context) {
	h.transition(c, h.processor.ResumeCampaign)
}

// HandleCancelCampaign handles POST /api/v1/campaigns/:campaign_id/cancel
func (h *Handler) HandleCancelCampaign(c *gin.Context) {
	h.transition(c, h.processor.CancelCampaign)
}

// HandleDeleteCampaign handles DELETE /api/v1/campaigns/:campaign_id
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
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

	if err := h.processor.DeleteCampaign(ctx, campaignID, user); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type transitionFunc func(ctx context.Context, campaignID uuid.UUID, actor store.User) (store.Campaign, error)

func (h *Handler) transition(c *gin.Context, fn transitionFunc) {
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

	campaign, err := fn(ctx, campaignID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}
