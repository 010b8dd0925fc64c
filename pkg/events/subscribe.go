package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/backoffice/pkg/logger"
)

// Handler processes one message. The context carries the publisher's trace.
type Handler func(context.Context, *message.Message) error

// Subscribe consumes topic in the background.
//
// A nil return from handler Acks the message. An error is retried up to
// maxRetries times with doubling delay, after which the message is Nacked
// and the error is sent on the returned channel. The channel is buffered
// and closed when the subscription ends; callers must drain it.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler Handler) (<-chan error, error) {
	ch, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, 100)

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)

		for msg := range ch {
			msgCtx := extractTrace(ctx, msg)
			if err := retryWithBackoff(msgCtx, msg, handler, maxRetries, retryBaseDelay, q.log); err != nil {
				msg.Nack()
				select {
				case errCh <- fmt.Errorf("%s: %w", topic, err):
				default:
					q.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
						"error", err, "topic", topic)
				}
				continue
			}
			msg.Ack()
		}
	}()

	return errCh, nil
}

// retryWithBackoff calls handler up to attempts times, doubling the delay
// between calls. Returns the last error once attempts are exhausted.
func retryWithBackoff(
	ctx context.Context,
	msg *message.Message,
	handler Handler,
	attempts int,
	delay time.Duration,
	log logger.Logger,
) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		log.WarnContext(ctx, "events: handler failed, retrying",
			"message_id", msg.UUID,
			"attempt", attempt,
			"max_retries", attempts,
			"next_delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("events: handler failed after %d retries: %w", attempts, err)
}
