package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/activity/processor"
	"github.com/p2p-kyc/verify-sub000/internal/apierrors"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
)

type Handler struct {
	processor processor.ActivityProcessor
	logger    *observability.Logger
}

func New(processor processor.ActivityProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// HandleListFeed handles GET /api/v1/activity
func (h *Handler) HandleListFeed(c *gin.Context) {
	ctx := c.Request.Context()

	limit, offset := pageParams(c)
	events, err := h.processor.ListFeed(ctx, limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// HandleListFeedForActor handles GET /api/v1/activity/users/:user_id
func (h *Handler) HandleListFeedForActor(c *gin.Context) {
	ctx := c.Request.Context()

	actorID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user id"))
		return
	}

	limit, offset := pageParams(c)
	events, err := h.processor.ListFeedForActor(ctx, actorID, limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func pageParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
