package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const userColumns = `id, external_id, email, name, role, last_login, last_active, created_at`

// UpsertUserParams contains the identity claims used to provision a user
type UpsertUserParams struct {
	ExternalID string
	Email      string
	Name       string
}

const sqlUpsertUser = `
INSERT INTO users (external_id, email, name, last_login)
VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
ON CONFLICT (external_id) DO UPDATE
SET email = EXCLUDED.email, name = EXCLUDED.name, last_login = CURRENT_TIMESTAMP
RETURNING ` + userColumns

// UpsertUser provisions a user from validated token claims, refreshing
// the profile fields and last login on every sign-in.
func (s *Store) UpsertUser(ctx context.Context, params UpsertUserParams) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlUpsertUser, params.ExternalID, params.Email, params.Name)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert user", err)
		return User{}, fmt.Errorf("failed to upsert user: %w", err)
	}
	return user, nil
}

const sqlGetUserByID = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
`

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by id", err)
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

const sqlGetUserByExternalID = `
SELECT ` + userColumns + `
FROM users
WHERE external_id = $1
`

// GetUserByExternalID retrieves a user by the identity provider's subject
func (s *Store) GetUserByExternalID(ctx context.Context, externalID string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByExternalID, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by external id", err)
		return User{}, fmt.Errorf("failed to get user by external id: %w", err)
	}
	return user, nil
}

const sqlUpdateLastActive = `
UPDATE users
SET last_active = CURRENT_TIMESTAMP
WHERE id = $1
`

// UpdateLastActive bumps the user's activity timestamp
func (s *Store) UpdateLastActive(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, sqlUpdateLastActive, userID); err != nil {
		s.logger.Error(ctx, "failed to update last active", err)
		return fmt.Errorf("failed to update last active: %w", err)
	}
	return nil
}
