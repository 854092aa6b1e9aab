package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateMessageParams represents parameters for appending a message to a
// request thread.
type CreateMessageParams struct {
	RequestID        uuid.UUID
	UserID           uuid.UUID
	Type             string
	Body             *string
	ImageURL         *string
	PaymentRequestID *uuid.UUID
}

const messageColumns = `id, request_id, user_id, type, body, image_url, payment_request_id, created_at`

const sqlCreateMessage = `
INSERT INTO messages (request_id, user_id, type, body, image_url, payment_request_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + messageColumns

// CreateMessage appends a message to a request thread. The thread is
// append-only; there is no update or delete path.
func (s *Store) CreateMessage(ctx context.Context, params CreateMessageParams) (Message, error) {
	var message Message
	err := s.db.GetContext(ctx, &message, sqlCreateMessage,
		params.RequestID,
		params.UserID,
		params.Type,
		params.Body,
		params.ImageURL,
		params.PaymentRequestID)
	if err != nil {
		s.logger.Error(ctx, "failed to create message", err)
		return Message{}, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

// insertMessageTx appends a message inside a workflow transaction so that
// workflow-trigger messages commit atomically with the entity write they
// announce. The inserted row is returned so callers can hand it to live
// thread subscribers after commit.
func insertMessageTx(ctx context.Context, tx *sqlx.Tx, params CreateMessageParams) (Message, error) {
	var message Message
	err := tx.GetContext(ctx, &message, sqlCreateMessage,
		params.RequestID,
		params.UserID,
		params.Type,
		params.Body,
		params.ImageURL,
		params.PaymentRequestID)
	return message, err
}

const sqlListMessagesByRequest = `
SELECT ` + messageColumns + `
FROM messages
WHERE request_id = $1
ORDER BY created_at ASC
`

// ListMessagesByRequest retrieves a thread in creation order
func (s *Store) ListMessagesByRequest(ctx context.Context, requestID uuid.UUID) ([]Message, error) {
	var messages []Message
	err := s.db.SelectContext(ctx, &messages, sqlListMessagesByRequest, requestID)
	if err != nil {
		s.logger.Error(ctx, "failed to list messages by request", err)
		return nil, fmt.Errorf("failed to list messages by request: %w", err)
	}
	return messages, nil
}
