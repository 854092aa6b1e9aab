package hub

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/p2p-kyc/verify-sub000/internal/observability"
)

// Hub fans chat messages out to WebSocket subscribers grouped by join
// request thread. Subscribers that fall behind are dropped rather than
// allowed to block the broadcast path.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[uuid.UUID]map[chan []byte]struct{}
	logger  *observability.Logger
	bufSize int
}

// New creates a new hub
func New(logger *observability.Logger) *Hub {
	return &Hub{
		rooms:   make(map[uuid.UUID]map[chan []byte]struct{}),
		logger:  logger,
		bufSize: 16,
	}
}

// Subscribe registers a subscriber for a thread and returns its channel
// plus an unsubscribe function. The channel is closed on unsubscribe.
func (h *Hub) Subscribe(requestID uuid.UUID) (<-chan []byte, func()) {
	ch := make(chan []byte, h.bufSize)

	h.mu.Lock()
	room, ok := h.rooms[requestID]
	if !ok {
		room = make(map[chan []byte]struct{})
		h.rooms[requestID] = room
	}
	room[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			if room, ok := h.rooms[requestID]; ok {
				delete(room, ch)
				if len(room) == 0 {
					delete(h.rooms, requestID)
				}
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsubscribe
}

// Broadcast delivers a payload to every subscriber of a thread. Slow
// subscribers with a full buffer miss the message.
func (h *Hub) Broadcast(ctx context.Context, requestID uuid.UUID, payload []byte) {
	h.mu.RLock()
	room := h.rooms[requestID]
	stale := 0
	for ch := range room {
		select {
		case ch <- payload:
		default:
			stale++
		}
	}
	h.mu.RUnlock()

	if stale > 0 {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "request_id", Value: requestID.String()},
			observability.Field{Key: "dropped", Value: stale},
		)
		h.logger.Warn(ctx, "dropped broadcast for slow subscribers")
	}
}

// SubscriberCount reports the number of subscribers on a thread
func (h *Hub) SubscriberCount(requestID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[requestID])
}
