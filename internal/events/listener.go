// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

// TriggerSource labels retrain triggers fired by change events.
const TriggerSource = "event"

// ErrSubscriptionClosed is returned by Serve when the subscriber closes the
// message channel while the listener is still running.
var ErrSubscriptionClosed = errors.New("events: subscription closed")

// Trigger requests a retrain of the given engines.
type Trigger interface {
	Fire(source string, kinds ...recommend.EntityKind)
}

// Listener is a supervised service forwarding change events to a Trigger.
type Listener struct {
	subscriber message.Subscriber
	topic      string
	trigger    Trigger
	logger     zerolog.Logger
}

// NewListener creates a listener for topic.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewListener(subscriber message.Subscriber, topic string, trigger Trigger, logger zerolog.Logger) *Listener {
	return &Listener{
		subscriber: subscriber,
		topic:      topic,
		trigger:    trigger,
		logger:     logger.With().Str("service", "events").Str("topic", topic).Logger(),
	}
}

// Serve implements suture.Service. It returns ctx.Err() on shutdown and an
// error when the subscription ends early, so the supervisor resubscribes.
func (l *Listener) Serve(ctx context.Context) error {
	messages, err := l.subscriber.Subscribe(ctx, l.topic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", l.topic, err)
	}

	l.logger.Info().Msg("listening for marketplace changes")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return ErrSubscriptionClosed
			}
			l.handle(msg)
		}
	}
}

// handle fires the trigger for one message. Messages are always acked.
func (l *Listener) handle(msg *message.Message) {
	defer msg.Ack()

	kinds, err := KindsForPayload(msg.Payload)
	if err != nil {
		l.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("ignoring change event")
		return
	}

	l.logger.Debug().
		Str("message_uuid", msg.UUID).
		Interface("kinds", kinds).
		Msg("change event received")
	l.trigger.Fire(TriggerSource, kinds...)
}

// String returns the service name for logging.
func (l *Listener) String() string {
	return "events-listener"
}
