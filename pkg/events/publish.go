package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Publisher JSON-encodes domain events into Watermill messages.
// It satisfies the sales repositories.EventPublisher port.
type Publisher struct {
	pub message.Publisher
}

// NewPublisher wraps an arbitrary Watermill publisher.
func NewPublisher(pub message.Publisher) *Publisher {
	return &Publisher{pub: pub}
}

// NewTxPublisher returns a Publisher whose messages are inserted through tx,
// so they become visible only if tx commits. The schema is assumed to exist
// already (the bus creates it at startup).
func (q *EventBus) NewTxPublisher(tx *sql.Tx) (*Publisher, error) {
	pub, err := newSQLPublisher(tx, false, &slogAdapter{log: q.log})
	if err != nil {
		return nil, fmt.Errorf("events: new tx publisher: %w", err)
	}
	return NewPublisher(wrapForwarder(pub, q.useForwarder)), nil
}

// Publish encodes event as JSON and sends it to topic.
func (p *Publisher) Publish(ctx context.Context, topic string, event any) error {
	msg, err := NewMessage(ctx, event)
	if err != nil {
		return err
	}
	if err := p.pub.Publish(topic, msg); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// Publish sends pre-built messages through the bus publisher, injecting
// the OTel trace context from ctx into each one.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	for _, msg := range msgs {
		injectTrace(ctx, msg)
	}
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// NewMessage builds a message with a fresh UUID, the JSON encoding of
// payload and the trace context of ctx in its metadata.
func NewMessage(ctx context.Context, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events: encode %T: %w", payload, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	injectTrace(ctx, msg)
	return msg, nil
}

// DecodeJSON unmarshals a message payload into dst.
func DecodeJSON(msg *message.Message, dst any) error {
	if err := json.Unmarshal(msg.Payload, dst); err != nil {
		return fmt.Errorf("events: decode message %s: %w", msg.UUID, err)
	}
	return nil
}

func injectTrace(ctx context.Context, msg *message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}
}

func extractTrace(ctx context.Context, msg *message.Message) context.Context {
	carrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		carrier[k] = v
	}
	return otel.GetTextMapPropagator().Extract(ctx, carrier)
}
