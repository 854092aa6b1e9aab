package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

// UserStore defines the database operations required by AuthProcessor
type UserStore interface {
	UpsertUser(ctx context.Context, params store.UpsertUserParams) (store.User, error)
	UpdateLastActive(ctx context.Context, userID uuid.UUID) error
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrParseToken   = errors.New("failed to parse token")
)

// IdentityClaims are the claims the identity service places in access
// tokens. Subject carries the external user ID.
type IdentityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type AuthProcessor struct {
	store     UserStore
	jwtSecret string
	logger    *observability.Logger
}

func New(store UserStore, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Authenticate validates a bearer token and provisions the local user row
// for its subject. Profile fields are refreshed from the claims on every
// call, so a rename at the identity service propagates on next request.
func (p *AuthProcessor) Authenticate(ctx context.Context, token string) (store.User, error) {
	claims, err := p.validateToken(ctx, token)
	if err != nil {
		return store.User{}, err
	}

	if claims.Subject == "" {
		return store.User{}, ErrInvalidToken
	}

	user, err := p.store.UpsertUser(ctx, store.UpsertUserParams{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to provision user from token", err)
		return store.User{}, err
	}
	return user, nil
}

// TouchLastActive records request activity for a user. Failures are
// logged and swallowed; activity tracking never fails a request.
func (p *AuthProcessor) TouchLastActive(ctx context.Context, user store.User) {
	if err := p.store.UpdateLastActive(ctx, user.ID); err != nil {
		p.logger.Error(ctx, "failed to update last active", err)
	}
}

func (p *AuthProcessor) validateToken(ctx context.Context, token string) (IdentityClaims, error) {
	var claims IdentityClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return IdentityClaims{}, ErrExpiredToken
		}
		p.logger.Error(ctx, "failed to parse token", err)
		return IdentityClaims{}, ErrParseToken
	}
	if !t.Valid {
		return IdentityClaims{}, ErrInvalidToken
	}
	return claims, nil
}
