// Package events wires marketplace happenings into the live activity feed.
//
// Controllers fire events after a successful write; delivery is
// fire-and-forget through the bounded dispatcher, so the feed never slows or
// fails an HTTP response. With a Redis relay configured, events loop through
// pub/sub so every instance broadcasts the same feed; without one they go
// straight to the local WebSocket hub.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shashiranjanraj/wisdorage/pkg/event"
	"github.com/shashiranjanraj/wisdorage/pkg/logger"
	"github.com/shashiranjanraj/wisdorage/pkg/ws"
)

// Event names carried on the feed.
const (
	OrderPlaced      = "order.placed"
	OrderCancelled   = "order.cancelled"
	BookAdvertised   = "book.advertised"
	SellerVerified   = "seller.verified"
	SellerUnverified = "seller.unverified"
	UserDeleted      = "user.deleted"
)

// All lists every feed event, in a stable order.
var All = []string{
	OrderPlaced,
	OrderCancelled,
	BookAdvertised,
	SellerVerified,
	SellerUnverified,
	UserDeleted,
}

// OrderEvent is the payload for order.placed and order.cancelled.
type OrderEvent struct {
	BookID     string `json:"bookId"`
	BuyerEmail string `json:"buyerEmail,omitempty"`
}

// BookEvent is the payload for book.advertised.
type BookEvent struct {
	ID string `json:"id"`
}

// SellerEvent is the payload for seller.verified and seller.unverified.
type SellerEvent struct {
	Email string `json:"email"`
}

// UserEvent is the payload for user.deleted.
type UserEvent struct {
	Email string `json:"email"`
}

// frame is what feed clients receive.
type frame struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	At      int64           `json:"at"`
}

const dispatchWorkers = 8

// Bus connects the dispatcher, the optional Redis relay and the WebSocket
// hub. A nil *Bus is a valid no-op, which keeps controllers testable without
// feed plumbing.
type Bus struct {
	dispatcher *event.Dispatcher
	relay      *event.RedisRelay
	hub        *ws.Hub
	cancel     context.CancelFunc
}

// NewBus builds the feed pipeline. relay may be nil.
func NewBus(hub *ws.Hub, relay *event.RedisRelay) *Bus {
	b := &Bus{
		dispatcher: event.NewDispatcher(dispatchWorkers),
		relay:      relay,
		hub:        hub,
	}

	for _, name := range All {
		b.dispatcher.Listen(name, b.deliver)
	}

	if relay != nil {
		ctx, cancel := context.WithCancel(context.Background())
		b.cancel = cancel
		relay.Subscribe(ctx, b.broadcast)
	}
	return b
}

// Fire queues an event for the feed. Safe on a nil Bus.
func (b *Bus) Fire(name string, payload interface{}) {
	if b == nil {
		return
	}
	b.dispatcher.Fire(name, payload)
}

// deliver runs on the dispatcher's pool. With a relay the event detours
// through Redis and comes back via broadcast, exactly once per instance.
func (b *Bus) deliver(name string, payload interface{}) {
	if b.relay != nil {
		b.relay.Publish(name, payload)
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("feed: marshal payload", "event", name, "error", err)
		return
	}
	b.broadcast(name, data)
}

func (b *Bus) broadcast(name string, payload json.RawMessage) {
	if b.hub == nil {
		return
	}
	data, _ := json.Marshal(frame{Event: name, Payload: payload, At: time.Now().Unix()})
	b.hub.Send(data)
}

// Close drains the dispatcher and stops the relay subscription.
func (b *Bus) Close() {
	if b == nil {
		return
	}
	if b.cancel != nil {
		b.cancel()
	}
	b.dispatcher.Close()
}
