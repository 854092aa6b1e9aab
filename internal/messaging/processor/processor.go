package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/roles"
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

// MessageStore defines the database operations required by MessageProcessor
type MessageStore interface {
	GetJoinRequestByID(ctx context.Context, requestID uuid.UUID) (store.JoinRequest, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	CreateMessage(ctx context.Context, params store.CreateMessageParams) (store.Message, error)
	ListMessagesByRequest(ctx context.Context, requestID uuid.UUID) ([]store.Message, error)
}

// EventDispatcher defines the event operations required by MessageProcessor
type EventDispatcher interface {
	DispatchMessagePosted(ctx context.Context, campaignID, requestID, messageID uuid.UUID)
}

// ThreadBroadcaster pushes a posted message to live subscribers of its
// thread.
type ThreadBroadcaster interface {
	Broadcast(ctx context.Context, requestID uuid.UUID, payload []byte)
}

var (
	ErrRequestNotFound  = errors.New("join request not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrUnauthorized     = errors.New("unauthorized access to thread")
	ErrEmptyMessage     = errors.New("message has no content")
)

type MessageProcessor struct {
	store           MessageStore
	eventDispatcher EventDispatcher
	broadcaster     ThreadBroadcaster
	logger          *observability.Logger
}

func New(store MessageStore, eventDispatcher EventDispatcher, broadcaster ThreadBroadcaster, logger *observability.Logger) MessageProcessor {
	return MessageProcessor{
		store:           store,
		eventDispatcher: eventDispatcher,
		broadcaster:     broadcaster,
		logger:          logger,
	}
}

// PostMessageParams carries a new thread message. Exactly one of Body or
// ImageURL must be set, matching the Type.
type PostMessageParams struct {
	RequestID uuid.UUID
	Type      string
	Body      string
	ImageURL  string
}

// PostMessage appends a text or image message to a join request thread.
// Only the campaign owner, the applicant, or an admin may post.
func (p *MessageProcessor) PostMessage(ctx context.Context, params PostMessageParams, actor store.User) (store.Message, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "request_id", Value: params.RequestID.String()},
		observability.Field{Key: "actor_id", Value: actor.ID.String()},
	)

	request, campaign, err := p.loadThread(ctx, params.RequestID)
	if err != nil {
		return store.Message{}, err
	}

	role := roles.Resolve(actor, campaign, &request)
	if !roles.CanViewThread(role) {
		return store.Message{}, ErrUnauthorized
	}

	createParams := store.CreateMessageParams{
		RequestID: params.RequestID,
		UserID:    actor.ID,
	}
	switch params.Type {
	case store.MessageTypeImage:
		if strings.TrimSpace(params.ImageURL) == "" {
			return store.Message{}, ErrEmptyMessage
		}
		imageURL := params.ImageURL
		createParams.Type = store.MessageTypeImage
		createParams.ImageURL = &imageURL
	default:
		body := strings.TrimSpace(params.Body)
		if body == "" {
			return store.Message{}, ErrEmptyMessage
		}
		createParams.Type = store.MessageTypeText
		createParams.Body = &body
	}

	message, err := p.store.CreateMessage(ctx, createParams)
	if err != nil {
		p.logger.Error(ctx, "failed to create message", err)
		return store.Message{}, err
	}

	p.broadcast(ctx, message)
	if p.eventDispatcher != nil {
		p.eventDispatcher.DispatchMessagePosted(ctx, campaign.ID, request.ID, message.ID)
	}
	return message, nil
}

// ListThread retrieves a join request thread in creation order for a
// participant or admin.
func (p *MessageProcessor) ListThread(ctx context.Context, requestID uuid.UUID, actor store.User) ([]store.Message, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "request_id", Value: requestID.String()},
		observability.Field{Key: "actor_id", Value: actor.ID.String()},
	)

	request, campaign, err := p.loadThread(ctx, requestID)
	if err != nil {
		return nil, err
	}

	role := roles.Resolve(actor, campaign, &request)
	if !roles.CanViewThread(role) {
		return nil, ErrUnauthorized
	}

	return p.store.ListMessagesByRequest(ctx, requestID)
}

// AuthorizeSubscriber reports whether an actor may open a live stream on
// a thread. Used by the WebSocket handler before upgrading.
func (p *MessageProcessor) AuthorizeSubscriber(ctx context.Context, requestID uuid.UUID, actor store.User) error {
	request, campaign, err := p.loadThread(ctx, requestID)
	if err != nil {
		return err
	}
	if !roles.CanViewThread(roles.Resolve(actor, campaign, &request)) {
		return ErrUnauthorized
	}
	return nil
}

func (p *MessageProcessor) loadThread(ctx context.Context, requestID uuid.UUID) (store.JoinRequest, store.Campaign, error) {
	request, err := p.store.GetJoinRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.JoinRequest{}, store.Campaign{}, ErrRequestNotFound
		}
		p.logger.Error(ctx, "failed to get join request", err)
		return store.JoinRequest{}, store.Campaign{}, err
	}

	campaign, err := p.store.GetCampaignByID(ctx, request.CampaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.JoinRequest{}, store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.JoinRequest{}, store.Campaign{}, err
	}
	return request, campaign, nil
}

func (p *MessageProcessor) broadcast(ctx context.Context, message store.Message) {
	if p.broadcaster == nil {
		return
	}
	payload, err := json.Marshal(message)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal message for broadcast", err)
		return
	}
	p.broadcaster.Broadcast(ctx, message.RequestID, payload)
}
