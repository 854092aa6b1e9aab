package ratelimit

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	authHandler "github.com/p2p-kyc/verify-sub000/internal/auth/handler"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
)

// Middleware throttles authenticated write requests. It must run after
// the auth middleware, requests without a user pass through untouched.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// Reads are never throttled
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		user, ok := authHandler.UserFromContext(c)
		if !ok {
			c.Next()
			return
		}

		result, err := l.Allow(ctx, user.ID)
		if err != nil {
			// A broken limiter must not take the API down
			l.logger.Warn(ctx, fmt.Sprintf("rate limit check failed, allowing request: %v", err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", result.RetryAfterMs/1000))
			logCtx := observability.WithFields(ctx,
				observability.Field{Key: "user_id", Value: user.ID.String()},
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			l.logger.Warn(logCtx, "rate limit exceeded")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"code":        "RATE_LIMIT_EXCEEDED",
				"limit":       result.Limit,
				"retry_after": result.RetryAfterMs / 1000,
				"reset_at":    result.ResetAt.Unix(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
