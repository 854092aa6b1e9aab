package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/p2p-kyc/verify-sub000/internal/apierrors"
	"github.com/p2p-kyc/verify-sub000/internal/auth/processor"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

// ContextKeyUser is the gin context key under which the authenticated
// user is stored.
const ContextKeyUser = "authenticated_user"

type Middleware struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Middleware {
	return Middleware{authProcessor: authProcessor, logger: logger}
}

// RequireAuth validates the bearer token, provisions the user, and stores
// it in the request context for downstream handlers.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierrors.RespondWithError(c, apierrors.Unauthorized("Missing or malformed Authorization header"))
			c.Abort()
			return
		}

		user, err := m.authProcessor.Authenticate(ctx, token)
		if err != nil {
			apierrors.RespondWithError(c, err)
			c.Abort()
			return
		}

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "user_id", Value: user.ID.String()},
		)
		c.Request = c.Request.WithContext(ctx)
		c.Set(ContextKeyUser, user)

		m.authProcessor.TouchLastActive(ctx, user)
		c.Next()
	}
}

// RequireAdmin gates a route to admin users. Must run after RequireAuth.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
			c.Abort()
			return
		}
		if user.Role != store.UserRoleAdmin {
			apierrors.RespondWithError(c, apierrors.Forbidden("Admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserFromContext retrieves the authenticated user placed by RequireAuth
func UserFromContext(c *gin.Context) (store.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return store.User{}, false
	}
	user, ok := value.(store.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
