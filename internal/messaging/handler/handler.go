package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/p2p-kyc/verify-sub000/internal/apierrors"
	authHandler "github.com/p2p-kyc/verify-sub000/internal/auth/handler"
	"github.com/p2p-kyc/verify-sub000/internal/messaging/hub"
	"github.com/p2p-kyc/verify-sub000/internal/messaging/processor"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Handler struct {
	processor processor.MessageProcessor
	hub       *hub.Hub
	logger    *observability.Logger
	upgrader  websocket.Upgrader
}

func New(processor processor.MessageProcessor, hub *hub.Hub, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		hub:       hub,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Auth happens via bearer token before the upgrade; the
			// Origin header is not part of the trust model here.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// PostMessageRequest represents the HTTP request for posting to a thread
type PostMessageRequest struct {
	Type     string `json:"type" binding:"omitempty,oneof=text image"`
	Body     string `json:"body,omitempty" binding:"max=5000"`
	ImageURL string `json:"image_url,omitempty" binding:"omitempty,url"`
}

// HandlePostMessage handles POST /api/v1/requests/:request_id/messages
func (h *Handler) HandlePostMessage(c *gin.Context) {
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

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	message, err := h.processor.PostMessage(ctx, processor.PostMessageParams{
		RequestID: requestID,
		Type:      req.Type,
		Body:      req.Body,
		ImageURL:  req.ImageURL,
	}, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// HandleListThread handles GET /api/v1/requests/:request_id/messages
func (h *Handler) HandleListThread(c *gin.Context) {
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

	messages, err := h.processor.ListThread(ctx, requestID, user)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// HandleThreadStream handles GET /api/v1/requests/:request_id/stream and
// upgrades the connection to a WebSocket that pushes new thread messages.
func (h *Handler) HandleThreadStream(c *gin.Context) {
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

	if err := h.processor.AuthorizeSubscriber(ctx, requestID, user); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "failed to upgrade connection", err)
		return
	}

	messages, unsubscribe := h.hub.Subscribe(requestID)
	defer unsubscribe()
	defer conn.Close()

	// Reader goroutine drains control frames and signals close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case payload, open := <-messages:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !open {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
