package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	activityHandler "github.com/p2p-kyc/verify-sub000/internal/activity/handler"
	authHandler "github.com/p2p-kyc/verify-sub000/internal/auth/handler"
	campaignHandler "github.com/p2p-kyc/verify-sub000/internal/campaign/handler"
	messagingHandler "github.com/p2p-kyc/verify-sub000/internal/messaging/handler"
	paymentsHandler "github.com/p2p-kyc/verify-sub000/internal/payments/handler"
	"github.com/p2p-kyc/verify-sub000/internal/ratelimit"
	refundsHandler "github.com/p2p-kyc/verify-sub000/internal/refunds/handler"
	requestsHandler "github.com/p2p-kyc/verify-sub000/internal/requests/handler"
	verificationHandler "github.com/p2p-kyc/verify-sub000/internal/verification/handler"
)

type API struct {
	router       *gin.RouterGroup
	auth         authHandler.Middleware
	limiter      *ratelimit.Limiter
	campaigns    campaignHandler.Handler
	requests     requestsHandler.Handler
	payments     paymentsHandler.Handler
	verification verificationHandler.Handler
	refunds      refundsHandler.Handler
	messaging    messagingHandler.Handler
	activity     activityHandler.Handler
}

func New(
	router *gin.RouterGroup,
	auth authHandler.Middleware,
	limiter *ratelimit.Limiter,
	campaigns campaignHandler.Handler,
	requests requestsHandler.Handler,
	payments paymentsHandler.Handler,
	verification verificationHandler.Handler,
	refunds refundsHandler.Handler,
	messaging messagingHandler.Handler,
	activity activityHandler.Handler,
) API {
	return API{
		router:       router,
		auth:         auth,
		limiter:      limiter,
		campaigns:    campaigns,
		requests:     requests,
		payments:     payments,
		verification: verification,
		refunds:      refunds,
		messaging:    messaging,
		activity:     activity,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	v1 := a.router.Group("/api/v1", a.auth.RequireAuth(), a.limiter.Middleware())
	{
		// Campaigns
		v1.POST("/campaigns", a.campaigns.HandleCreateCampaign)
		v1.GET("/campaigns", a.campaigns.HandleBrowseCampaigns)
		v1.GET("/campaigns/mine", a.campaigns.HandleListOwnCampaigns)
		v1.GET("/campaigns/:campaign_id", a.campaigns.HandleGetCampaign)
		v1.PATCH("/campaigns/:campaign_id", a.campaigns.HandleUpdateCampaign)
		v1.DELETE("/campaigns/:campaign_id", a.campaigns.HandleDeleteCampaign)
		v1.POST("/campaigns/:campaign_id/payment-proof", a.campaigns.HandleSubmitPaymentProof)
		v1.POST("/campaigns/:campaign_id/pause", a.campaigns.HandlePauseCampaign)
		v1.POST("/campaigns/:campaign_id/resume", a.campaigns.HandleResumeCampaign)
		v1.POST("/campaigns/:campaign_id/cancel", a.campaigns.HandleCancelCampaign)

		// Join requests
		v1.POST("/campaigns/:campaign_id/requests", a.requests.HandleApply)
		v1.GET("/campaigns/:campaign_id/requests", a.requests.HandleListForCampaign)
		v1.GET("/requests/mine", a.requests.HandleListOwn)
		v1.GET("/requests/:request_id", a.requests.HandleGetRequest)
		v1.POST("/requests/:request_id/accept", a.requests.HandleAccept)
		v1.POST("/requests/:request_id/reject", a.requests.HandleReject)

		// Message threads
		v1.POST("/requests/:request_id/messages", a.messaging.HandlePostMessage)
		v1.GET("/requests/:request_id/messages", a.messaging.HandleListThread)
		v1.GET("/requests/:request_id/stream", a.messaging.HandleThreadStream)

		// Charges
		v1.POST("/charges", a.payments.HandleCreateCharge)
		v1.GET("/charges/mine", a.payments.HandleListOwn)
		v1.GET("/campaigns/:campaign_id/charges", a.payments.HandleListForCampaign)
		v1.POST("/charges/:charge_id/respond", a.payments.HandleRespondToCharge)
		v1.POST("/charges/:charge_id/appeal", a.payments.HandleAppealCharge)
		v1.POST("/charges/:charge_id/paid", a.payments.HandleMarkChargePaid)

		// Verifications
		v1.POST("/campaigns/:campaign_id/verifications", a.verification.HandleSubmit)
		v1.GET("/campaigns/:campaign_id/verifications", a.verification.HandleListForCampaign)

		// Refunds
		v1.POST("/campaigns/:campaign_id/refunds", a.refunds.HandleRequestRefund)
		v1.GET("/campaigns/:campaign_id/refunds", a.refunds.HandleListForCampaign)
	}

	admin := a.router.Group("/api/v1/admin", a.auth.RequireAuth(), a.auth.RequireAdmin())
	{
		admin.POST("/campaigns/:campaign_id/approve-proof", a.campaigns.HandleApprovePaymentProof)
		admin.POST("/campaigns/:campaign_id/reject", a.campaigns.HandleRejectCampaign)
		admin.POST("/charges/:charge_id/resolve-appeal", a.payments.HandleResolveAppeal)
		admin.POST("/charges/:charge_id/complete", a.payments.HandleCompleteCharge)
		admin.POST("/verifications/:verification_id/approve", a.verification.HandleApprove)
		admin.POST("/verifications/:verification_id/complete", a.verification.HandleComplete)
		admin.GET("/refunds", a.refunds.HandleListPending)
		admin.POST("/refunds/:refund_id/resolve", a.refunds.HandleResolveRefund)
		admin.POST("/refunds/:refund_id/complete", a.refunds.HandleCompleteRefund)
		admin.GET("/activity", a.activity.HandleListFeed)
		admin.GET("/activity/users/:user_id", a.activity.HandleListFeedForActor)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
