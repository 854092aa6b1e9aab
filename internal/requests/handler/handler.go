package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/apierrors"
	authHandler "github.com/p2p-kyc/verify-sub000/internal/auth/handler"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/requests/processor"
)

type Handler struct {
	processor processor.RequestProcessor
	logger    *observability.Logger
}

func New(processor processor.RequestProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// HandleApply handles POST /api/v1/campaigns/:campaign_id/requests
func (h *Handler) HandleApply(c *gin.Context) {
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

	request, err := h.processor.Apply(ctx, campaignID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// HandleAccept handles POST /api/v1/requests/:request_id/accept
func (h *Handler) HandleAccept(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid request id"))
		return
	}

	result, err := h.processor.Accept(ctx, requestID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleReject handles POST /api/v1/requests/:request_id/reject
func (h *Handler) HandleReject(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid request id"))
		return
	}

	request, err := h.processor.Reject(ctx, requestID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// HandleListForCampaign handles GET /api/v1/campaigns/:campaign_id/requests
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

	requests, err := h.processor.ListForCampaign(ctx, campaignID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// HandleListOwn handles GET /api/v1/requests/mine
func (h *Handler) HandleListOwn(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	requests, err := h.processor.ListOwn(ctx, user.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// HandleGetRequest handles GET /api/v1/requests/:request_id
func (h *Handler) HandleGetRequest(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := authHandler.UserFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid request id"))
		return
	}

	request, err := h.processor.GetRequest(ctx, requestID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}
