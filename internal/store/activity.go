package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const activityEventColumns = `id, type, title, description, actor_id, created_at`

// CreateActivityEventParams contains the parameters for recording an activity event
type CreateActivityEventParams struct {
	Type        string
	Title       string
	Description string
	ActorID     *uuid.UUID
}

const sqlInsertActivityEvent = `
INSERT INTO activity_events (type, title, description, actor_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + activityEventColumns

// insertActivityEventTx records an activity event inside an existing
// transaction so workflow writes and their audit entry commit together.
func insertActivityEventTx(ctx context.Context, tx *sqlx.Tx, params CreateActivityEventParams) error {
	var event ActivityEvent
	if err := tx.GetContext(ctx, &event, sqlInsertActivityEvent,
		params.Type, params.Title, params.Description, params.ActorID); err != nil {
		return fmt.Errorf("failed to insert activity event: %w", err)
	}
	return nil
}

// CreateActivityEvent records a standalone activity event
func (s *Store) CreateActivityEvent(ctx context.Context, params CreateActivityEventParams) (ActivityEvent, error) {
	var event ActivityEvent
	err := s.db.GetContext(ctx, &event, sqlInsertActivityEvent,
		params.Type, params.Title, params.Description, params.ActorID)
	if err != nil {
		s.logger.Error(ctx, "failed to create activity event", err)
		return ActivityEvent{}, fmt.Errorf("failed to create activity event: %w", err)
	}
	return event, nil
}

const sqlListActivityEvents = `
SELECT ` + activityEventColumns + `
FROM activity_events
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListActivityEvents retrieves activity events newest first
func (s *Store) ListActivityEvents(ctx context.Context, limit, offset int) ([]ActivityEvent, error) {
	var events []ActivityEvent
	err := s.db.SelectContext(ctx, &events, sqlListActivityEvents, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list activity events", err)
		return nil, fmt.Errorf("failed to list activity events: %w", err)
	}
	return events, nil
}

const sqlListActivityEventsByActor = `
SELECT ` + activityEventColumns + `
FROM activity_events
WHERE actor_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// ListActivityEventsByActor retrieves activity events for a single actor
func (s *Store) ListActivityEventsByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]ActivityEvent, error) {
	var events []ActivityEvent
	err := s.db.SelectContext(ctx, &events, sqlListActivityEventsByActor, actorID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list activity events by actor", err)
		return nil, fmt.Errorf("failed to list activity events by actor: %w", err)
	}
	return events, nil
}
