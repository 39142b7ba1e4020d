package kds

import "context"

// Event types
const (
	EventBookingCreated = "booking_created"
	EventOrderPlaced    = "order_placed"
	EventPaymentSettled = "payment_settled"
)

type Message struct {
	Event string      `json:"event"`
	Key   string      `json:"key,omitempty"`
	Data  interface{} `json:"data"`
}

// Publisher delivers committed domain events to interested clients.
// Delivery is best-effort: implementations log failures instead of returning them.
type Publisher interface {
	Publish(ctx context.Context, msg Message)
}

// Fanout sends every message to each of its publishers in order.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, msg Message) {
	for _, p := range f {
		if p != nil {
			p.Publish(ctx, msg)
		}
	}
}

// Nop drops every message.
type Nop struct{}

func (Nop) Publish(context.Context, Message) {}
